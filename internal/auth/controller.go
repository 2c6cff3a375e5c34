package auth

import (
	"context"

	"sessions-service/internal/auth/credentials"
	"sessions-service/internal/logger"
	"sessions-service/internal/session"
	"sessions-service/internal/store"
)

// State tracks a request through the login flow. Every request starts
// at Anonymous and ends at a terminal state; nothing survives between
// requests except what the store holds.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Verdict is the controller's answer: the terminal state reached and,
// when authenticated, the resolved identity and token.
type Verdict struct {
	State     State
	Username  string
	SessionID int
}

func (v Verdict) Authenticated() bool {
	return v.State == Authenticated
}

// Controller orchestrates credential verification, session issuance and
// cookie recognition over a shared store.
type Controller struct {
	store      store.Store
	issuer     *session.Issuer
	recognizer *session.Recognizer
}

func NewController(st store.Store) *Controller {
	return &Controller{
		store:      st,
		issuer:     session.NewIssuer(st),
		recognizer: session.NewRecognizer(st),
	}
}

// Login verifies the credential pair and on success issues a fresh
// session token, invalidating the user's prior one. Unknown user and
// wrong password produce the same Rejected verdict so callers cannot
// enumerate accounts. A failed login never mutates the store.
//
// A non-nil error means the store was unavailable or issuance failed;
// the verdict is still Rejected and callers must deny access.
func (c *Controller) Login(ctx context.Context, username, password string) (Verdict, error) {
	st, err := c.store.Load(ctx)
	if err != nil {
		logger.Error("store unavailable during login", map[string]any{
			"error": err.Error(),
		})
		return Verdict{State: Rejected}, err
	}

	user, ok := st.Users[username]
	if !ok || !credentials.Verify(password, user.PasswordHash) {
		return Verdict{State: Rejected}, nil
	}

	token, err := c.issuer.Issue(ctx, username)
	if err != nil {
		logger.Error("session issuance failed", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return Verdict{State: Rejected}, err
	}

	return Verdict{
		State:     Authenticated,
		Username:  username,
		SessionID: token,
	}, nil
}

// Recognize resolves a raw Cookie header to an identity. Store errors
// fail closed: the caller gets an anonymous verdict, never an error.
func (c *Controller) Recognize(ctx context.Context, cookieHeader string) Verdict {
	id, err := c.recognizer.Recognize(ctx, cookieHeader)
	if err != nil {
		logger.Error("store unavailable during recognition", map[string]any{
			"error": err.Error(),
		})
		return Verdict{State: Anonymous}
	}
	if !id.Authenticated {
		return Verdict{State: Anonymous}
	}
	return Verdict{
		State:     Authenticated,
		Username:  id.Username,
		SessionID: id.SessionID,
	}
}

// Logout removes the session named by the cookie header, clearing both
// sides of the user/session mapping. Missing or unknown tokens are a
// no-op; logout is idempotent.
func (c *Controller) Logout(ctx context.Context, cookieHeader string) error {
	raw, ok := session.ParseCookieHeader(cookieHeader)[session.CookieName]
	if !ok || raw == "" {
		return nil
	}
	return c.store.Update(ctx, func(st *store.State) error {
		username, ok := st.Sessions[raw]
		if !ok {
			return nil
		}
		delete(st.Sessions, raw)
		if user, ok := st.Users[username]; ok {
			user.SessionID = 0
			st.Users[username] = user
		}
		return nil
	})
}
