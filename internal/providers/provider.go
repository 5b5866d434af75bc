// Package providers adapts heterogeneous LLM backends behind one contract.
package providers

import (
	"context"

	"prepwise-backend/internal/models"
)

// Provider is the uniform completion contract over all backends.
type Provider interface {
	// Complete sends the resolved conversation to the backend and returns
	// the assistant's reply text.
	Complete(ctx context.Context, messages []models.Message, modelID string) (string, error)
}

// Error carries a backend's raw error text across the adapter boundary.
// The gateway classifies it; adapters never interpret it.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
