/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /topics", middleware.WithLogging(handler))

Logs method, path, response status, remote address, and duration.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ParseJSONBody(r, &req)

# CORS Middleware

	server := http.Server{Handler: middleware.CORS(mux)}

Allows GET, POST, DELETE, OPTIONS with Content-Type and X-Identity-Token
headers.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
Used for the salted IP hash stored on vote audit records.
*/
package middleware
