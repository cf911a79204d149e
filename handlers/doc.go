/*
Package handlers contains the HTTP adapters over the voting service.

# Handler Types

  - TopicHandler: list, detail, create
  - SessionHandler: open and close voting sessions
  - VoteHandler: cast a yes/no vote
  - ResultHandler: tally retrieval

Handlers are thin: they extract the identity token, parse and bounds-check
the JSON payload, call the service, and map domain errors onto HTTP
statuses via writeDomainError. No lifecycle rule lives here.

# Topic Lifecycle

Topics progress through three states: WAITING → OPEN → CLOSED

	POST   /topics               → Create (WAITING)
	POST   /topics/{id}/session  → Open (requires WAITING)
	DELETE /topics/{id}/session  → Close (requires OPEN)

Identity-requiring operations read the X-Identity-Token header; the token
is issued and verified by the external identity provider.

# Error Mapping

	ValidationError      → 400
	ErrTopicNotFound     → 404
	ErrInvalidTransition → 409
	ErrDuplicateVote     → 409 (distinct "already voted" message)
	anything else        → 500, opaque
*/
package handlers
