package server

import (
	"sentiment/internal/handlers"
)

// RegisterRoutes registers all application routes.
// Routes accept every method; each handler answers 405 for the ones it does not serve.
func (s *Server) RegisterRoutes(classifier handlers.Classifier) {
	probeHandler := handlers.NewProbeHandler(s.Readiness)
	sentimentHandler := handlers.NewSentimentHandler(classifier, s.Logger)
	metricsHandler := handlers.NewMetricsHandler(s.Metrics)

	// Probe routes
	s.App.All("/health", handlers.WithFailureBody(handlers.BodyDown, probeHandler.Health))
	s.App.All("/ready", handlers.WithFailureBody(handlers.BodyNotReady, probeHandler.Readiness))

	// API
	s.App.All("/api/sentiment", sentimentHandler.Analyze)

	// Metrics
	s.App.All("/metrics", metricsHandler.Serve)

	// Service descriptor - must be last (catch-all for unknown paths)
	s.App.All("/", handlers.Describe)
	s.App.All("/*", handlers.Describe)
}
