package session

import (
	"time"

	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/topics"
)

// MaxDuration caps a voting session at 24 hours.
const MaxDuration = 24 * time.Hour

// Controller mediates the WAITING -> OPEN and OPEN -> CLOSED edges of the
// topic lifecycle. All mutations go through the topic store's conditional
// updates, so concurrent attempts serialize there.
type Controller struct {
	topics *topics.Store
}

func NewController(topics *topics.Store) *Controller {
	return &Controller{topics: topics}
}

// Open transitions a WAITING topic to OPEN, stamping opens_at. A non-nil
// duration fixes the close deadline at now+duration; nil leaves the session
// open until an explicit Close. A zero duration is honored literally and
// produces a session that expires on the next touch.
func (c *Controller) Open(topicID, actor string, duration *time.Duration) (models.Topic, error) {
	if actor == "" {
		return models.Topic{}, models.NewValidationError("identity", "must not be empty")
	}

	now := time.Now()
	opensAt := now

	var closesAt *time.Time
	if duration != nil {
		if *duration < 0 {
			return models.Topic{}, models.NewValidationError("duration", "must not be negative")
		}
		if *duration > MaxDuration {
			return models.Topic{}, models.NewValidationError("duration", "must not exceed 24 hours")
		}
		deadline := now.Add(*duration)
		closesAt = &deadline
	}

	return c.topics.Transition(topicID, models.StatusWaiting, models.StatusOpen, &opensAt, closesAt)
}

// Close transitions an OPEN topic to CLOSED. Closing a topic that is not
// OPEN fails with ErrInvalidTransition, including a topic that lazy expiry
// already closed.
func (c *Controller) Close(topicID string) (models.Topic, error) {
	return c.topics.Transition(topicID, models.StatusOpen, models.StatusClosed, nil, nil)
}

// CloseIfExpired is the lazy-expiry check: it closes the topic when its
// deadline has passed and reports whether this call did the closing. Every
// status-dependent operation runs this first, so correctness never depends
// on a background clock.
func (c *Controller) CloseIfExpired(topicID string, now time.Time) (bool, error) {
	return c.topics.CloseExpired(topicID, now)
}

// CloseAllExpired closes every open topic past its deadline. Used by the
// optional background sweeper and before listing topics.
func (c *Controller) CloseAllExpired(now time.Time) (int64, error) {
	return c.topics.CloseAllExpired(now)
}
