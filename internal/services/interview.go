package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"prepwise-backend/internal/models"
)

const (
	questionSystemPrompt   = "You are an expert interviewer who creates challenging but fair interview questions."
	evaluationSystemPrompt = "You are an expert interviewer who provides detailed, constructive feedback on interview answers."

	questionMaxTokens = 150
)

// interviewCompleter is the slice of the OpenAI adapter the interview
// pipelines need: single-shot system+user completions, optionally in
// strict-JSON mode.
type interviewCompleter interface {
	CompletePair(ctx context.Context, system, user, modelID string, maxTokens int, jsonMode bool) (string, error)
	Configured() bool
}

// InterviewService runs the two fixed-prompt pipelines: question generation
// and answer evaluation. Both always use the higher-capability model
// variant on the OpenAI backend.
type InterviewService struct {
	openai  interviewCompleter
	modelID string
}

func NewInterviewService(openai interviewCompleter, modelID string) *InterviewService {
	return &InterviewService{openai: openai, modelID: modelID}
}

// GenerateQuestion produces one new open-ended interview question, avoiding
// the previously asked ones.
func (s *InterviewService) GenerateQuestion(ctx context.Context, req models.GenerateQuestionRequest) (models.GenerateQuestionResponse, error) {
	if req.JobDescription == "" || req.InterviewType == "" {
		return models.GenerateQuestionResponse{}, &ValidationError{Message: "Job description and interview type are required"}
	}
	if !s.openai.Configured() {
		return models.GenerateQuestionResponse{}, &InternalError{Message: "OpenAI API key is not configured"}
	}

	prompt := buildQuestionPrompt(req)
	raw, err := s.openai.CompletePair(ctx, questionSystemPrompt, prompt, s.modelID, questionMaxTokens, false)
	if err != nil {
		return models.GenerateQuestionResponse{}, classifyProviderError(err)
	}

	question := strings.TrimSpace(raw)
	if question == "" {
		return models.GenerateQuestionResponse{}, &ValidationError{Message: "Failed to generate question"}
	}

	return models.GenerateQuestionResponse{Question: question}, nil
}

// EvaluateAnswer scores a candidate's answer against the job description.
// The model is asked for strict JSON; anything unparseable or missing a
// required key is an upstream format failure.
func (s *InterviewService) EvaluateAnswer(ctx context.Context, req models.EvaluateAnswerRequest) (models.Evaluation, error) {
	if req.Question == "" || req.Answer == "" || req.JobDescription == "" || req.InterviewType == "" {
		return models.Evaluation{}, &ValidationError{Message: "Question, answer, job description, and interview type are required"}
	}
	if !s.openai.Configured() {
		return models.Evaluation{}, &InternalError{Message: "OpenAI API key is not configured"}
	}

	prompt := buildEvaluationPrompt(req)
	raw, err := s.openai.CompletePair(ctx, evaluationSystemPrompt, prompt, s.modelID, 0, true)
	if err != nil {
		return models.Evaluation{}, classifyProviderError(err)
	}

	var eval models.Evaluation
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &eval); err != nil {
		return models.Evaluation{}, &UpstreamFormatError{Message: "Invalid evaluation format received"}
	}
	if eval.Score == nil || eval.Strengths == nil || eval.AreasForImprovement == nil || eval.Suggestions == nil {
		return models.Evaluation{}, &UpstreamFormatError{Message: "Invalid evaluation format received"}
	}
	if *eval.Score < 0 || *eval.Score > 100 {
		return models.Evaluation{}, &UpstreamFormatError{Message: "Invalid evaluation format received"}
	}

	return eval, nil
}

func buildQuestionPrompt(req models.GenerateQuestionRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a challenging interview question for a %s interview for the following job:\n\n", req.InterviewType))
	b.WriteString("Job Description:\n")
	b.WriteString(req.JobDescription)
	b.WriteString("\n\n")

	if len(req.PreviousQuestions) > 0 {
		b.WriteString("Previous questions asked:\n")
		b.WriteString(strings.Join(req.PreviousQuestions, "\n"))
		b.WriteString("\n\nGenerate a new, different question that hasn't been asked yet.\n\n")
	}

	b.WriteString("The question should be:\n")
	b.WriteString("- Specific to the job requirements\n")
	b.WriteString("- Challenging but fair\n")
	b.WriteString("- Open-ended to allow for detailed responses\n")
	b.WriteString(fmt.Sprintf("- Relevant to %s interview context\n\n", req.InterviewType))
	b.WriteString("Generate only the question, no additional text or formatting.")

	return b.String()
}

func buildEvaluationPrompt(req models.EvaluateAnswerRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Evaluate the following interview answer for a %s interview:\n\n", req.InterviewType))
	b.WriteString(fmt.Sprintf("Question: %s\n\n", req.Question))
	b.WriteString(fmt.Sprintf("Answer: %s\n\n", req.Answer))
	b.WriteString("Job Description:\n")
	b.WriteString(req.JobDescription)
	b.WriteString("\n\n")

	b.WriteString(`Provide a detailed evaluation in the following JSON format:
{
  "score": number (0-100),
  "strengths": string[],
  "areasForImprovement": string[],
  "suggestions": string[]
}

The evaluation should consider:
- Relevance to the question
- Specificity of examples
- Clarity of communication
- Alignment with job requirements
- Technical accuracy (if applicable)
- Leadership potential (if applicable)`)

	return b.String()
}

// stripCodeFence removes a markdown fence some models wrap JSON output in.
func stripCodeFence(raw string) string {
	out := strings.TrimSpace(raw)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
