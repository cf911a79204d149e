package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agoravote/agora/middleware"
	"github.com/agoravote/agora/models"
)

// writeDomainError maps domain failures onto HTTP statuses. Anything
// outside the domain taxonomy is logged and surfaced as an opaque 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		middleware.ErrorResponse(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrTopicNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Topic not found")
	case errors.Is(err, models.ErrDuplicateVote):
		// Distinct from other conflicts so clients can show a specific
		// "already voted" message. Retrying cannot change the outcome.
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this topic")
	case errors.Is(err, models.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
