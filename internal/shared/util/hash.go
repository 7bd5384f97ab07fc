package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey maps a user id (account or guest) to the fixed-width hex
// prefix under which that user's plan artifacts are stored. Raw ids
// contain characters like ':' that S3 keys and local paths should not.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
