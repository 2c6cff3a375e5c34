package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the hex SHA-256 digest of password, the form the
// store document has always carried. Unsalted: two users with the same
// password share a digest, and precomputed-table attacks apply. Kept
// for snapshot compatibility; new deployments should provision bcrypt
// hashes instead (see Verify).
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BcryptHash hashes password with bcrypt for operators provisioning the
// versioned hash form.
func BcryptHash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches the stored hash. Hashes with
// the bcrypt "$2" prefix are verified with bcrypt; anything else is
// compared as a hex SHA-256 digest. A mismatch is a normal outcome, not
// an error.
func Verify(password, storedHash string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		err := bcrypt.CompareHashAndPassword(
			[]byte(storedHash),
			[]byte(password),
		)
		return err == nil
	}

	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
}
