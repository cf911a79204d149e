package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
)

// Header carries the opaque voter identity issued by the external identity
// provider. The service never mints or verifies these tokens itself; it
// only requires that one is present and well-formed.
const Header = "X-Identity-Token"

const (
	minTokenLen = 8
	maxTokenLen = 128
)

var (
	ErrMissingIdentity   = errors.New("missing identity token")
	ErrMalformedIdentity = errors.New("malformed identity token")
)

// FromRequest extracts the authenticated voter identity from a request.
func FromRequest(r *http.Request) (string, error) {
	token := r.Header.Get(Header)
	if token == "" {
		return "", ErrMissingIdentity
	}
	if len(token) < minTokenLen || len(token) > maxTokenLen {
		return "", ErrMalformedIdentity
	}
	for _, c := range token {
		if !isTokenChar(c) {
			return "", ErrMalformedIdentity
		}
	}
	return token, nil
}

// isTokenChar accepts the URL-safe alphabet identity providers emit
// (base64url, uuid, hex all fit).
func isTokenChar(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '-' || c == '_' || c == '.':
		return true
	}
	return false
}

// HashIP creates a salted one-way hash of a client IP for vote audit
// records. Returns the first 8 bytes (16 hex chars) of HMAC-SHA256, enough
// for deduplication without storing addresses.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
