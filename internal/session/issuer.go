package session

import (
	"context"
	"errors"
	"strconv"

	"sessions-service/internal/store"
)

// Candidate draws before giving up. With a six-digit token space and a
// handful of live sessions this is unreachable in practice.
const maxTokenAttempts = 100

var (
	ErrUnknownUser    = errors.New("session: unknown user")
	ErrTokenExhausted = errors.New("session: token space exhausted")
)

// Issuer hands out session tokens, enforcing one active session per
// user: issuing always removes the user's prior token before the new
// one is committed.
type Issuer struct {
	Store  store.Store
	Tokens TokenSource
}

func NewIssuer(st store.Store) *Issuer {
	return &Issuer{Store: st, Tokens: CryptoTokenSource{}}
}

// Issue assigns a fresh token to username and persists the store. The
// whole read-invalidate-insert-save sequence runs under the store's
// writer lock.
func (i *Issuer) Issue(ctx context.Context, username string) (int, error) {
	var token int

	err := i.Store.Update(ctx, func(st *store.State) error {
		user, ok := st.Users[username]
		if !ok {
			return ErrUnknownUser
		}

		next, err := i.nextToken(st, user.SessionID)
		if err != nil {
			return err
		}

		// Drop the prior session even if some other path already
		// evicted it from the map.
		if user.SessionID != 0 {
			delete(st.Sessions, strconv.Itoa(user.SessionID))
		}

		user.SessionID = next
		st.Users[username] = user
		st.Sessions[strconv.Itoa(next)] = username

		token = next
		return nil
	})
	if err != nil {
		return 0, err
	}
	return token, nil
}

// nextToken draws candidates until one is neither the user's prior
// token nor held by any live session, so no two users ever share a
// token value.
func (i *Issuer) nextToken(st *store.State, prior int) (int, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		candidate, err := i.Tokens.Token()
		if err != nil {
			return 0, err
		}
		if candidate == prior {
			continue
		}
		if _, taken := st.Sessions[strconv.Itoa(candidate)]; taken {
			continue
		}
		return candidate, nil
	}
	return 0, ErrTokenExhausted
}
