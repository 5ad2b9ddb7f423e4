package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"sentiment/internal/jsontext"
	"sentiment/internal/sentiment"
)

// Classifier labels normalized text.
type Classifier interface {
	Classify(text string) sentiment.Sentiment
}

// SentimentHandler serves the classification API.
type SentimentHandler struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewSentimentHandler creates a new sentiment handler.
func NewSentimentHandler(classifier Classifier, logger *slog.Logger) *SentimentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SentimentHandler{classifier: classifier, logger: logger}
}

// Analyze classifies the text given as ?text= on GET or {"text":"..."} on POST.
// The response echoes the trimmed input with its original case.
func (h *SentimentHandler) Analyze(c fiber.Ctx) error {
	start := time.Now()

	text, err := textFromRequest(c)
	if err != nil {
		return err
	}

	trimmed := sentiment.Trim(text)
	result := h.classifier.Classify(sentiment.Normalize(trimmed))

	body := `{"text":"` + jsontext.Escape(trimmed) + `","sentiment":"` + result.String() + `"}`
	if err := sendJSON(c, fiber.StatusOK, body); err != nil {
		return err
	}

	h.logger.Info("sentiment classified",
		"method", c.Method(),
		"path", c.Path(),
		"remote", c.RequestCtx().RemoteAddr().String(),
		"sentiment", result.String(),
		"dur_ms", time.Since(start).Milliseconds(),
		"request_id", requestid.FromContext(c),
	)
	return nil
}
