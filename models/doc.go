/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateTopicRequest: title, description
  - OpenSessionRequest: duration (minutes, optional)
  - CastVoteRequest: vote ("YES" or "NO")

# Response Types

Types for JSON responses:

  - CreateTopicResponse: message, topic
  - CastVoteResponse: vote_id, vote, cast_at, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Topic: topic metadata and lifecycle state
  - Vote: a single yes/no vote with audit fields
  - TallyResult: derived counts and outcome, recomputed per read

# Constants

Status values:

	StatusWaiting = "WAITING"
	StatusOpen    = "OPEN"
	StatusClosed  = "CLOSED"

Choices:

	ChoiceYes = "YES"
	ChoiceNo  = "NO"

Outcomes:

	OutcomeApproved = "APPROVED"
	OutcomeRejected = "REJECTED"
	OutcomeTie      = "TIE"

# Errors

The domain error taxonomy lives in errors.go: ErrTopicNotFound,
ErrInvalidTransition, ErrDuplicateVote, and ValidationError. Handlers map
these onto HTTP statuses; anything outside the taxonomy is an opaque
internal failure.
*/
package models
