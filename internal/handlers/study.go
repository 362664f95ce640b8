package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/services"
	"github.com/vidyapath/planner-api/internal/utils"
)

// StudyHandler serves the AI-backed summarize and quiz endpoints.
type StudyHandler struct {
	aiService *services.AIService
}

// NewStudyHandler creates a new StudyHandler. aiService may be nil when no
// API key is configured; the endpoints then answer 503.
func NewStudyHandler(aiService *services.AIService) *StudyHandler {
	return &StudyHandler{
		aiService: aiService,
	}
}

// Summarize condenses submitted study text.
func (h *StudyHandler) Summarize(c *gin.Context) {
	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "Summary service is not configured")
		return
	}

	type SummarizeRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Text is required")
		return
	}

	summary, err := h.aiService.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		respondStudyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GenerateQuiz builds a multiple-choice quiz from submitted study text.
func (h *StudyHandler) GenerateQuiz(c *gin.Context) {
	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "Quiz service is not configured")
		return
	}

	type QuizRequest struct {
		Text  string `json:"text" binding:"required"`
		Count int    `json:"count"`
	}

	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Text is required")
		return
	}

	quiz, err := h.aiService.GenerateQuiz(c.Request.Context(), req.Text, req.Count)
	if err != nil {
		respondStudyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func respondStudyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTextTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAIBadQuiz):
		apierrors.InternalError(c, "AI failed to format the quiz correctly. Please try again.")
	case errors.Is(err, services.ErrAINotConfigured),
		errors.Is(err, utils.ErrRetriesExhausted):
		apierrors.ServiceUnavailable(c, "Service is temporarily unavailable")
	default:
		apierrors.InternalError(c, "")
	}
}
