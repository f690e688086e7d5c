package handler

import (
	"net/http"

	"hedonic/internal/quiz"

	"github.com/rs/zerolog"
)

// QuizHandler serves the quiz content consumed by the storefront client.
type QuizHandler struct {
	content *quiz.Content
	logger  zerolog.Logger
}

// NewQuizHandler creates a new quiz handler over loaded content.
func NewQuizHandler(content *quiz.Content, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		content: content,
		logger:  logger.With().Str("handler", "quiz").Logger(),
	}
}

// GetContent handles GET /api/quiz requests.
func (h *QuizHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.content)
}
