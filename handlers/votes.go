package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agoravote/agora/cliparse"
	"github.com/agoravote/agora/identity"
	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/service"
)

type VoteHandler struct {
	svc *service.VotingService
	cfg cliparse.Config
}

func NewVoteHandler(svc *service.VotingService, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg}
}

// Cast handles POST /topics/{id}/vote. Requires an authenticated identity;
// the topic's session must be OPEN, and each identity votes at most once.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
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

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ipHash := identity.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	vote, err := h.svc.CastVote(token, topicID, req.Vote, &ipHash)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("vote recorded", "topic_id", topicID, "vote_id", vote.ID, "choice", vote.Choice)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:  vote.ID,
		Vote:    vote.Choice,
		CastAt:  vote.CastAt,
		Message: "Vote recorded successfully",
	})
}
