package topics

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agoravote/agora/models"
)

// Store owns topic records and their lifecycle state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// statusRank orders the lifecycle. A transition is legal only when the
// target rank is exactly one above the current rank, so nothing ever moves
// backward or skips a state.
var statusRank = map[string]int{
	models.StatusWaiting: 0,
	models.StatusOpen:    1,
	models.StatusClosed:  2,
}

// Create persists a new topic in WAITING status with no session timestamps.
func (s *Store) Create(title, description, createdBy string) (models.Topic, error) {
	if title == "" {
		return models.Topic{}, models.NewValidationError("title", "must not be empty")
	}
	if description == "" {
		return models.Topic{}, models.NewValidationError("description", "must not be empty")
	}

	topic := models.Topic{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		Status:      models.StatusWaiting,
		CreatedAt:   time.Now(),
	}

	_, err := s.db.Exec(`
		INSERT INTO topic (id, title, description, created_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, topic.ID, topic.Title, topic.Description, topic.CreatedBy, topic.Status, topic.CreatedAt)
	if err != nil {
		return models.Topic{}, fmt.Errorf("failed to insert topic: %w", err)
	}

	return topic, nil
}

// Get returns the topic with the given id, or ErrTopicNotFound.
func (s *Store) Get(id string) (models.Topic, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, created_by, status, opens_at, closes_at, created_at
		FROM topic
		WHERE id = $1
	`, id)
	return scanTopic(row)
}

// List returns all topics in creation order.
func (s *Store) List() ([]models.Topic, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, created_by, status, opens_at, closes_at, created_at
		FROM topic
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedBy,
			&t.Status, &t.OpensAt, &t.ClosesAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}

	return topics, nil
}

// Transition atomically moves a topic from one status to the next. The
// update is conditional on the current status, so when several callers race
// on the same topic exactly one wins; the rest observe the post-transition
// state and get ErrInvalidTransition. Session timestamps are only written
// when non-nil. Invoked by the session controller, not by handlers.
func (s *Store) Transition(id, from, to string, opensAt, closesAt *time.Time) (models.Topic, error) {
	if statusRank[to] != statusRank[from]+1 {
		return models.Topic{}, fmt.Errorf("%s -> %s: %w", from, to, models.ErrInvalidTransition)
	}

	res, err := s.db.Exec(`
		UPDATE topic
		SET status = $1,
		    opens_at = COALESCE($2, opens_at),
		    closes_at = COALESCE($3, closes_at)
		WHERE id = $4 AND status = $5
	`, to, opensAt, closesAt, id, from)
	if err != nil {
		return models.Topic{}, fmt.Errorf("failed to update topic status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Topic{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		// Lost the race or started from the wrong status. Report against
		// the live state so the caller sees what actually happened.
		current, gerr := s.Get(id)
		if gerr != nil {
			return models.Topic{}, gerr
		}
		return models.Topic{}, fmt.Errorf("%s -> %s, topic is %s: %w",
			from, to, current.Status, models.ErrInvalidTransition)
	}

	return s.Get(id)
}

// CloseExpired closes the topic if it is OPEN and its close deadline has
// passed. Returns true when this call performed the close. A topic with no
// deadline is never touched.
func (s *Store) CloseExpired(id string, now time.Time) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE topic
		SET status = $1
		WHERE id = $2 AND status = $3 AND closes_at IS NOT NULL AND closes_at <= $4
	`, models.StatusClosed, id, models.StatusOpen, now)
	if err != nil {
		return false, fmt.Errorf("failed to close expired topic: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// CloseAllExpired closes every OPEN topic whose deadline has passed and
// returns how many it closed.
func (s *Store) CloseAllExpired(now time.Time) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE topic
		SET status = $1
		WHERE status = $2 AND closes_at IS NOT NULL AND closes_at <= $3
	`, models.StatusClosed, models.StatusOpen, now)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired topics: %w", err)
	}
	return res.RowsAffected()
}

func scanTopic(row *sql.Row) (models.Topic, error) {
	var t models.Topic
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedBy,
		&t.Status, &t.OpensAt, &t.ClosesAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Topic{}, models.ErrTopicNotFound
	}
	if err != nil {
		return models.Topic{}, fmt.Errorf("failed to scan topic: %w", err)
	}
	return t, nil
}
