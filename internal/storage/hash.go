package storage

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// HashBytes returns the BLAKE3-256 digest of data as a hex string.
func HashBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
