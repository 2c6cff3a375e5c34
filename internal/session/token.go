package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Tokens live in [MinToken, MaxToken]; the store document records
	// them as decimal strings in its sessions map.
	MinToken = 1
	MaxToken = 999999
)

// TokenSource produces candidate session tokens. The issuer retries
// candidates against the live session map, so a source only has to
// cover the range, not avoid collisions itself.
type TokenSource interface {
	Token() (int, error)
}

// CryptoTokenSource draws uniformly from [MinToken, MaxToken] using
// crypto/rand. The six-digit space is small enough to guess online and
// survives only because existing store snapshots record such tokens;
// it is a known weakness of the format, not of the generator.
type CryptoTokenSource struct{}

func (CryptoTokenSource) Token() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(MaxToken))
	if err != nil {
		return 0, fmt.Errorf("session: token generation: %w", err)
	}
	return int(n.Int64()) + MinToken, nil
}
