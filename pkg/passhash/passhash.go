// Package passhash computes the credential digest stored alongside each user.
//
// The digest is a deterministic, unsalted SHA-256 of the UTF-8 plaintext,
// rendered as lowercase hex. That is the interchange contract the existing
// credential rows were written under, so it is kept for compatibility even
// though it offers no protection against precomputation attacks.
package passhash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex-encoded SHA-256 of the password.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
