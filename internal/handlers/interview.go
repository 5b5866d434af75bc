package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"prepwise-backend/internal/models"
)

type interviewService interface {
	GenerateQuestion(ctx context.Context, req models.GenerateQuestionRequest) (models.GenerateQuestionResponse, error)
	EvaluateAnswer(ctx context.Context, req models.EvaluateAnswerRequest) (models.Evaluation, error)
}

type InterviewHandler struct {
	interview interviewService
}

func NewInterviewHandler(interview interviewService) *InterviewHandler {
	return &InterviewHandler{interview: interview}
}

func (h *InterviewHandler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	resp, err := h.interview.GenerateQuestion(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	eval, err := h.interview.EvaluateAnswer(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eval)
}
