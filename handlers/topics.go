package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agoravote/agora/identity"
	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/service"
)

type TopicHandler struct {
	svc *service.VotingService
}

func NewTopicHandler(svc *service.VotingService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// List handles GET /topics. Public; expired sessions are swept before the
// listing so no topic reports a stale OPEN status.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, topics)
}

// Get handles GET /topics/{id}. Public.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("id")
	if topicID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "topic id is required")
		return
	}

	topic, err := h.svc.GetTopic(topicID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, topic)
}

// Create handles POST /topics. Requires an authenticated identity.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	token, err := identity.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateTopicRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	topic, err := h.svc.CreateTopic(token, req.Title, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("topic created", "topic_id", topic.ID, "title", topic.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateTopicResponse{
		Message: "Topic created successfully",
		Topic:   topic,
	})
}
