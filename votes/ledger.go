package votes

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agoravote/agora/models"
)

// Ledger records individual votes and enforces at-most-one-vote-per-identity
// for each topic.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Cast records a vote. The insert commits only while the owning topic is
// OPEN (the status guard and the insert are a single statement), and the
// UNIQUE (topic_id, voter_id) key resolves concurrent casts from the same
// identity to exactly one stored vote; the losers get ErrDuplicateVote.
//
// A zero-row insert means the topic was not OPEN at the instant of casting,
// or does not exist at all; the caller distinguishes the two.
func (l *Ledger) Cast(topicID, voterID, choice string, ipHash *string) (models.Vote, error) {
	if choice != models.ChoiceYes && choice != models.ChoiceNo {
		return models.Vote{}, models.NewValidationError("vote", "must be YES or NO")
	}
	if voterID == "" {
		return models.Vote{}, models.NewValidationError("identity", "must not be empty")
	}

	vote := models.Vote{
		ID:      uuid.NewString(),
		TopicID: topicID,
		VoterID: voterID,
		Choice:  choice,
		CastAt:  time.Now(),
		IPHash:  ipHash,
	}

	res, err := l.db.Exec(`
		INSERT INTO vote (id, topic_id, voter_id, choice, cast_at, ip_hash)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (SELECT 1 FROM topic WHERE id = $2 AND status = $7)
	`, vote.ID, vote.TopicID, vote.VoterID, vote.Choice, vote.CastAt, vote.IPHash,
		models.StatusOpen)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Vote{}, models.ErrDuplicateVote
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return models.Vote{}, fmt.Errorf("voting session is not open: %w", models.ErrInvalidTransition)
	}

	return vote, nil
}

// Count recomputes the yes/no totals from the stored votes. Counts are
// derived on every call; no incremental counter is kept as a source of
// truth.
func (l *Ledger) Count(topicID string) (yes, no int, err error) {
	err = l.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN choice = $1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN choice = $2 THEN 1 ELSE 0 END), 0)
		FROM vote
		WHERE topic_id = $3
	`, models.ChoiceYes, models.ChoiceNo, topicID).Scan(&yes, &no)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return yes, no, nil
}

// isUniqueViolation matches the unique-constraint error text of both
// supported drivers (modernc.org/sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
