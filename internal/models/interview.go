package models

// GenerateQuestionRequest asks for a new interview question for a job.
// PreviousQuestions is an exclusion hint so the model does not repeat itself.
type GenerateQuestionRequest struct {
	JobDescription    string   `json:"jobDescription"`
	InterviewType     string   `json:"interviewType"`
	PreviousQuestions []string `json:"previousQuestions,omitempty"`
}

// GenerateQuestionResponse carries the generated question.
type GenerateQuestionResponse struct {
	Question string `json:"question"`
}

// EvaluateAnswerRequest asks for an evaluation of a candidate's answer.
// All four fields are required.
type EvaluateAnswerRequest struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	JobDescription string `json:"jobDescription"`
	InterviewType  string `json:"interviewType"`
}

// Evaluation is the structured verdict parsed from the model's JSON output.
// Score is a pointer so a response that omits it can be told apart from a
// genuine zero; the slices are nil only when the key was absent.
type Evaluation struct {
	Score               *float64 `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Suggestions         []string `json:"suggestions"`
}
