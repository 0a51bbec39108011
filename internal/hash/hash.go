// Package hash provides shared hashing utilities for stable identifiers.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
)

// LocalIdentifierPrefix marks source identifiers derived from local files.
const LocalIdentifierPrefix = "local::"

// SHA1Hex returns the full SHA1 hash of the input string as hex.
func SHA1Hex(data string) string {
	h := sha1.Sum([]byte(data))
	return hex.EncodeToString(h[:])
}

// LocalFileIdentifier returns the content-addressed source identifier for a
// local file path. The same absolute path always maps to the same identifier,
// which is what dedup-on-add keys off.
func LocalFileIdentifier(absPath string) string {
	return LocalIdentifierPrefix + SHA1Hex(absPath)
}
