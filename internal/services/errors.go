package services

// Typed service errors. Handlers map these to HTTP statuses; nothing below
// the handler layer ever writes a response.

// ValidationError covers malformed or missing request fields, including an
// unknown prompt template.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError means the upstream rejected our credential.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// RateLimitError means the upstream throttled us.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string { return e.Message }

// QuotaError means billing/quota exhaustion upstream. Hint carries a
// remediation suggestion for the response details.
type QuotaError struct {
	Message string
	Hint    string
}

func (e *QuotaError) Error() string { return e.Message }

// UpstreamFormatError means the upstream response was missing expected
// fields or was not the JSON we asked for.
type UpstreamFormatError struct {
	Message string
}

func (e *UpstreamFormatError) Error() string { return e.Message }

// InternalError is any other failure worth a specific message.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }
