package session

import (
	"context"
	"strconv"
	"strings"

	"sessions-service/internal/store"
)

// ParseCookieHeader splits a raw Cookie header into key/value pairs.
// Pairs are separated by "; "; a pair with other than exactly one "="
// is silently dropped. A later duplicate key wins.
func ParseCookieHeader(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}
	for _, pair := range strings.Split(header, "; ") {
		if strings.Count(pair, "=") != 1 {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		cookies[key] = value
	}
	return cookies
}

// Identity is the outcome of recognizing a client-supplied cookie. An
// absent header, an absent session_id cookie and an unknown token all
// yield the same unauthenticated zero value.
type Identity struct {
	Authenticated bool
	Username      string
	SessionID     int
}

// Recognizer resolves cookie-carried tokens against the store.
type Recognizer struct {
	Store store.Store
}

func NewRecognizer(st store.Store) *Recognizer {
	return &Recognizer{Store: st}
}

// Recognize loads the store fresh and resolves the session_id cookie in
// header. Store errors propagate so callers can fail closed.
func (r *Recognizer) Recognize(ctx context.Context, header string) (Identity, error) {
	raw, ok := ParseCookieHeader(header)[CookieName]
	if !ok || raw == "" {
		return Identity{}, nil
	}

	st, err := r.Store.Load(ctx)
	if err != nil {
		return Identity{}, err
	}

	username, ok := st.Sessions[raw]
	if !ok {
		return Identity{}, nil
	}

	token, err := strconv.Atoi(raw)
	if err != nil {
		// The issuer only ever writes decimal keys; a non-numeric
		// match means a hand-edited document, not a session of ours.
		return Identity{}, nil
	}

	return Identity{
		Authenticated: true,
		Username:      username,
		SessionID:     token,
	}, nil
}
