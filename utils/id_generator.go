package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID creates a unique identifier with the given prefix. The
// timestamp component keeps generated keys roughly chronological when
// iterated in lexical order.
func GenerateID(prefix string) string {
	timestamp := time.Now().UnixNano()

	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)

	return fmt.Sprintf("%s_%d_%s", prefix, timestamp, hex.EncodeToString(randomBytes))
}

// ValidateID checks if an ID carries the expected prefix
func ValidateID(id, expectedPrefix string) error {
	if len(id) < len(expectedPrefix)+1 {
		return fmt.Errorf("ID too short: %s", id)
	}

	if id[:len(expectedPrefix)] != expectedPrefix {
		return fmt.Errorf("ID does not have expected prefix %s: %s", expectedPrefix, id)
	}

	return nil
}
