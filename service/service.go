package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/session"
	"github.com/agoravote/agora/tally"
	"github.com/agoravote/agora/topics"
	"github.com/agoravote/agora/votes"
)

// VotingService composes the topic store, vote ledger, session controller,
// and tally engine into the externally visible operations. It adds no
// invariants of its own; its one job besides composition is ordering the
// lazy-expiry check before every status-dependent decision, so a topic past
// its deadline is observed as CLOSED even when no sweeper runs.
type VotingService struct {
	topics   *topics.Store
	votes    *votes.Ledger
	sessions *session.Controller
	tally    *tally.Engine
}

func New(db *sql.DB) *VotingService {
	store := topics.NewStore(db)
	ledger := votes.NewLedger(db)
	return &VotingService{
		topics:   store,
		votes:    ledger,
		sessions: session.NewController(store),
		tally:    tally.NewEngine(store, ledger),
	}
}

// CreateTopic registers a new topic in WAITING status on behalf of an
// authenticated identity.
func (s *VotingService) CreateTopic(identityToken, title, description string) (models.Topic, error) {
	if identityToken == "" {
		return models.Topic{}, models.NewValidationError("identity", "must not be empty")
	}
	return s.topics.Create(title, description, identityToken)
}

// ListTopics returns every topic in creation order, after sweeping any
// sessions whose deadline has passed.
func (s *VotingService) ListTopics() ([]models.Topic, error) {
	if _, err := s.sessions.CloseAllExpired(time.Now()); err != nil {
		return nil, err
	}
	return s.topics.List()
}

// GetTopic returns one topic, reflecting lazy expiry.
func (s *VotingService) GetTopic(id string) (models.Topic, error) {
	if _, err := s.sessions.CloseIfExpired(id, time.Now()); err != nil {
		return models.Topic{}, err
	}
	return s.topics.Get(id)
}

// OpenSession opens the voting session on a WAITING topic. A nil duration
// keeps the session open until an explicit CloseSession.
func (s *VotingService) OpenSession(identityToken, topicID string, duration *time.Duration) (models.Topic, error) {
	if _, err := s.sessions.CloseIfExpired(topicID, time.Now()); err != nil {
		return models.Topic{}, err
	}
	return s.sessions.Open(topicID, identityToken, duration)
}

// CloseSession closes an OPEN session explicitly.
func (s *VotingService) CloseSession(identityToken, topicID string) (models.Topic, error) {
	if identityToken == "" {
		return models.Topic{}, models.NewValidationError("identity", "must not be empty")
	}
	if _, err := s.sessions.CloseIfExpired(topicID, time.Now()); err != nil {
		return models.Topic{}, err
	}
	return s.sessions.Close(topicID)
}

// CastVote records a yes/no vote for the given identity while the topic's
// session is OPEN. A second vote from the same identity fails with
// ErrDuplicateVote no matter how the calls interleave.
func (s *VotingService) CastVote(identityToken, topicID, choice string, ipHash *string) (models.Vote, error) {
	if identityToken == "" {
		return models.Vote{}, models.NewValidationError("identity", "must not be empty")
	}
	if _, err := s.sessions.CloseIfExpired(topicID, time.Now()); err != nil {
		return models.Vote{}, err
	}

	vote, err := s.votes.Cast(topicID, identityToken, choice, ipHash)
	if errors.Is(err, models.ErrInvalidTransition) {
		// The guarded insert cannot tell a missing topic from a topic that
		// is not OPEN; look once more to report the right failure.
		if _, gerr := s.topics.Get(topicID); gerr != nil {
			return models.Vote{}, gerr
		}
	}
	return vote, err
}

// GetResult computes the tally for a topic, reflecting lazy expiry first so
// a result read never reports an expired session as OPEN.
func (s *VotingService) GetResult(topicID string) (models.TallyResult, error) {
	if _, err := s.sessions.CloseIfExpired(topicID, time.Now()); err != nil {
		return models.TallyResult{}, err
	}
	return s.tally.ComputeResult(topicID)
}

// SweepExpired closes all sessions past their deadline. Called by the
// optional background sweeper; the lazy checks above keep the system
// correct without it.
func (s *VotingService) SweepExpired() (int64, error) {
	return s.sessions.CloseAllExpired(time.Now())
}
