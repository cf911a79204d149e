/*
Package router defines the HTTP routes.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health

Topics:

	GET  /topics      - List all topics (public)
	POST /topics      - Create topic (identity required)
	GET  /topics/{id} - Topic detail (public)

Sessions (identity required):

	POST   /topics/{id}/session - Open the voting session
	DELETE /topics/{id}/session - Close the voting session

Voting (identity required):

	POST /topics/{id}/vote - Cast a YES/NO vote

Results (public):

	GET /topics/{id}/result - Counts, and the outcome once closed

Uses Go 1.22+ method-and-path ServeMux patterns.
*/
package router
