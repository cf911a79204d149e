package models

import "time"

// Topic status constants. Transitions only ever move forward:
// WAITING -> OPEN -> CLOSED.
const (
	StatusWaiting = "WAITING"
	StatusOpen    = "OPEN"
	StatusClosed  = "CLOSED"
)

// Vote choice constants
const (
	ChoiceYes = "YES"
	ChoiceNo  = "NO"
)

// Tally outcome constants
const (
	OutcomeApproved = "APPROVED"
	OutcomeRejected = "REJECTED"
	OutcomeTie      = "TIE"
)

// Request types

type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type OpenSessionRequest struct {
	// Duration of the voting session in minutes. Absent means the session
	// stays open until explicitly closed. Zero is honored literally and
	// yields a session that expires on the next touch.
	Duration *int `json:"duration,omitempty"`
}

type CastVoteRequest struct {
	Vote string `json:"vote"`
}

// Response types

type CreateTopicResponse struct {
	Message string `json:"message"`
	Topic   Topic  `json:"topic"`
}

type CastVoteResponse struct {
	VoteID  string    `json:"vote_id"`
	Vote    string    `json:"vote"`
	CastAt  time.Time `json:"cast_at"`
	Message string    `json:"message"`
}

// Domain types

type Topic struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"-"` // opaque voter identity, never exposed
	Status      string     `json:"status"`
	OpensAt     *time.Time `json:"opens_at,omitempty"`
	ClosesAt    *time.Time `json:"closes_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Vote struct {
	ID      string    `json:"id"`
	TopicID string    `json:"topic_id"`
	VoterID string    `json:"-"` // never expose in JSON
	Choice  string    `json:"choice"`
	CastAt  time.Time `json:"cast_at"`
	IPHash  *string   `json:"-"` // audit only, never expose in JSON
}

// TallyResult is derived from the vote ledger on every read; it is never
// stored. Outcome is set only once the topic is CLOSED.
type TallyResult struct {
	TopicID          string         `json:"topic_id"`
	TopicTitle       string         `json:"topic_title"`
	TopicDescription string         `json:"topic_description"`
	TopicStatus      string         `json:"topic_status"`
	YesVotes         int            `json:"yes_votes"`
	NoVotes          int            `json:"no_votes"`
	TotalVotes       int            `json:"total_votes"`
	Results          map[string]int `json:"results"`
	Outcome          string         `json:"outcome,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
