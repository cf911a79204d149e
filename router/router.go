package router

import (
	"net/http"

	"github.com/agoravote/agora/cliparse"
	"github.com/agoravote/agora/handlers"
	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/service"
)

func NewRouter(svc *service.VotingService, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	topicHandler := handlers.NewTopicHandler(svc)
	sessionHandler := handlers.NewSessionHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc, cfg)
	resultHandler := handlers.NewResultHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Topics (listing and detail are public, creation requires identity)
	mux.HandleFunc("GET /topics", middleware.WithLogging(topicHandler.List))
	mux.HandleFunc("POST /topics", middleware.WithLogging(topicHandler.Create))
	mux.HandleFunc("GET /topics/{id}", middleware.WithLogging(topicHandler.Get))

	// Session lifecycle (requires identity)
	mux.HandleFunc("POST /topics/{id}/session", middleware.WithLogging(sessionHandler.Open))
	mux.HandleFunc("DELETE /topics/{id}/session", middleware.WithLogging(sessionHandler.Close))

	// Voting (requires identity)
	mux.HandleFunc("POST /topics/{id}/vote", middleware.WithLogging(voteHandler.Cast))

	// Results (public, live tally while open)
	mux.HandleFunc("GET /topics/{id}/result", middleware.WithLogging(resultHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("agora API v1"))
	})

	return mux
}
