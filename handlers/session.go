package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/agoravote/agora/identity"
	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/service"
)

type SessionHandler struct {
	svc *service.VotingService
}

func NewSessionHandler(svc *service.VotingService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Open handles POST /topics/{id}/session. Requires an authenticated
// identity. The optional body {"duration": minutes} fixes the close
// deadline; without it the session stays open until an explicit close.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("id")
	if topicID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "topic id is required")
		return
	}

	token, err := identity.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// An empty body is a valid open-without-deadline request.
	var req models.OpenSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var duration *time.Duration
	if req.Duration != nil {
		if *req.Duration < 0 || *req.Duration > 1440 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duration must be between 0 and 1440 minutes")
			return
		}
		d := time.Duration(*req.Duration) * time.Minute
		duration = &d
	}

	topic, err := h.svc.OpenSession(token, topicID, duration)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if topic.ClosesAt != nil {
		slog.Info("session opened", "topic_id", topic.ID, "closes", humanize.Time(*topic.ClosesAt))
	} else {
		slog.Info("session opened", "topic_id", topic.ID, "closes", "on explicit close")
	}

	middleware.JSONResponse(w, http.StatusOK, topic)
}

// Close handles DELETE /topics/{id}/session. Requires an authenticated
// identity; the session must currently be OPEN.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("id")
	if topicID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "topic id is required")
		return
	}

	token, err := identity.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	topic, err := h.svc.CloseSession(token, topicID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("session closed", "topic_id", topic.ID)

	middleware.JSONResponse(w, http.StatusOK, topic)
}
