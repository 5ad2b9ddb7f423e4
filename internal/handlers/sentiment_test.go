package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/sentiment"
)

type recordingClassifier struct {
	seen   []string
	result sentiment.Sentiment
}

func (r *recordingClassifier) Classify(text string) sentiment.Sentiment {
	r.seen = append(r.seen, text)
	return r.result
}

func TestSentimentHandler_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		seen     string
		response string
	}{
		{
			name:     "get normalizes before classifying",
			method:   http.MethodGet,
			target:   "/api/sentiment?text=%20%20Hello%20WORLD%20",
			seen:     "hello world",
			response: `{"text":"Hello WORLD","sentiment":"negative"}`,
		},
		{
			name:     "post echoes escaped text",
			method:   http.MethodPost,
			target:   "/api/sentiment",
			body:     `{"text":"tab\there"}`,
			seen:     "tab\there",
			response: `{"text":"tab\there","sentiment":"negative"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := &recordingClassifier{result: sentiment.Negative}
			var logs bytes.Buffer
			h := NewSentimentHandler(classifier, slog.New(slog.NewTextHandler(&logs, nil)))

			app := fiber.New(fiber.Config{ErrorHandler: WriteError})
			app.All("/api/sentiment", h.Analyze)

			req, _ := http.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			data, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if string(data) != tt.response {
				t.Errorf("body = %s, want %s", data, tt.response)
			}
			if len(classifier.seen) != 1 || classifier.seen[0] != tt.seen {
				t.Errorf("classifier saw %q, want [%q]", classifier.seen, tt.seen)
			}
			if !strings.Contains(logs.String(), "sentiment=negative") {
				t.Errorf("missing log line: %s", logs.String())
			}
		})
	}
}

func TestSentimentHandler_MethodNotAllowed(t *testing.T) {
	classifier := &recordingClassifier{result: sentiment.Neutral}
	h := NewSentimentHandler(classifier, slog.New(slog.NewTextHandler(io.Discard, nil)))

	app := fiber.New(fiber.Config{ErrorHandler: WriteError})
	app.All("/api/sentiment", h.Analyze)

	req, _ := http.NewRequest(http.MethodPatch, "/api/sentiment", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
	if len(classifier.seen) != 0 {
		t.Error("classifier called for a rejected method")
	}
}
