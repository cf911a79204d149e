package handlers

import (
	"net/http"

	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/service"
)

type ResultHandler struct {
	svc *service.VotingService
}

func NewResultHandler(svc *service.VotingService) *ResultHandler {
	return &ResultHandler{svc: svc}
}

// Get handles GET /topics/{id}/result. Public, readable at any status:
// while the session is OPEN the counts are a live tally with no outcome
// label; once CLOSED the payload carries the final outcome.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("id")
	if topicID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "topic id is required")
		return
	}

	result, err := h.svc.GetResult(topicID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
