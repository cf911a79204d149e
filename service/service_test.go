package service

import (
	"errors"
	"testing"
	"time"

	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/testutil"
)

func TestCreateTopic(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	topic, err := svc.CreateTopic("creator-token-1", "Budget", "Approve 2025 budget")
	if err != nil {
		t.Fatalf("CreateTopic() error = %v", err)
	}
	if topic.Status != models.StatusWaiting {
		t.Errorf("status = %s, want WAITING", topic.Status)
	}

	if _, err := svc.CreateTopic("", "Budget", "Approve 2025 budget"); !models.IsValidation(err) {
		t.Errorf("CreateTopic without identity error = %v, want ValidationError", err)
	}
}

func TestCastVoteMissingTopic(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	_, err := svc.CastVote("voter-token-1", "missing-topic", models.ChoiceYes, nil)
	if !errors.Is(err, models.ErrTopicNotFound) {
		t.Errorf("CastVote() error = %v, want ErrTopicNotFound", err)
	}
}

// TestImmediateExpiryScenario covers opening with a zero duration: the
// session closes on the very next touch, and votes are rejected from then
// on.
func TestImmediateExpiryScenario(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	topic, err := svc.CreateTopic("creator-token-1", "Budget", "Approve 2025 budget")
	if err != nil {
		t.Fatal(err)
	}
	if topic.Status != models.StatusWaiting {
		t.Fatalf("status = %s, want WAITING", topic.Status)
	}

	zero := time.Duration(0)
	opened, err := svc.OpenSession("creator-token-1", topic.ID, &zero)
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	if opened.Status != models.StatusOpen {
		t.Fatalf("status = %s, want OPEN", opened.Status)
	}
	if opened.ClosesAt == nil || opened.ClosesAt.After(time.Now()) {
		t.Error("closes_at should be at or before now for a zero duration")
	}

	// Any read touching the topic now observes CLOSED.
	got, err := svc.GetTopic(topic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusClosed {
		t.Errorf("status after expiry = %s, want CLOSED", got.Status)
	}

	// And casting fails as a transition error, not a duplicate.
	_, err = svc.CastVote("voter-token-1", topic.ID, models.ChoiceYes, nil)
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("CastVote after expiry error = %v, want ErrInvalidTransition", err)
	}
}

// TestVotingScenario covers the full happy path: open without a deadline,
// two voters, a duplicate attempt, and a tied result.
func TestVotingScenario(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	topic, err := svc.CreateTopic("creator-token-1", "Budget", "Approve 2025 budget")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.OpenSession("creator-token-1", topic.ID, nil); err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}

	if _, err := svc.CastVote("voter-token-a", topic.ID, models.ChoiceYes, nil); err != nil {
		t.Fatalf("first vote error = %v", err)
	}
	if _, err := svc.CastVote("voter-token-b", topic.ID, models.ChoiceNo, nil); err != nil {
		t.Fatalf("second vote error = %v", err)
	}
	if _, err := svc.CastVote("voter-token-a", topic.ID, models.ChoiceYes, nil); !errors.Is(err, models.ErrDuplicateVote) {
		t.Fatalf("repeat vote error = %v, want ErrDuplicateVote", err)
	}

	result, err := svc.GetResult(topic.ID)
	if err != nil {
		t.Fatalf("GetResult() error = %v", err)
	}
	if result.YesVotes != 1 || result.NoVotes != 1 || result.TotalVotes != 2 {
		t.Errorf("counts = %d/%d/%d, want 1/1/2",
			result.YesVotes, result.NoVotes, result.TotalVotes)
	}
	if result.Outcome != "" {
		t.Errorf("outcome = %q, want empty while OPEN", result.Outcome)
	}

	if _, err := svc.CloseSession("creator-token-1", topic.ID); err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}

	result, err = svc.GetResult(topic.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != models.OutcomeTie {
		t.Errorf("outcome = %q, want TIE", result.Outcome)
	}
	if result.TopicStatus != models.StatusClosed {
		t.Errorf("topic status = %s, want CLOSED", result.TopicStatus)
	}
}

func TestListTopicsSweepsExpired(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	expired := testutil.CreateTestTopic(t, conn, models.StatusOpen)
	testutil.SetTopicDeadline(t, conn, expired, time.Now().Add(-time.Minute))

	topics, err := svc.ListTopics()
	if err != nil {
		t.Fatalf("ListTopics() error = %v", err)
	}

	found := false
	for _, topic := range topics {
		if topic.ID == expired {
			found = true
			if topic.Status != models.StatusClosed {
				t.Errorf("expired topic listed as %s, want CLOSED", topic.Status)
			}
		}
	}
	if !found {
		t.Error("expired topic missing from listing")
	}
}

func TestCloseSessionRequiresIdentity(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	svc := New(conn)

	id := testutil.CreateTestTopic(t, conn, models.StatusOpen)

	if _, err := svc.CloseSession("", id); !models.IsValidation(err) {
		t.Errorf("CloseSession without identity error = %v, want ValidationError", err)
	}
}
