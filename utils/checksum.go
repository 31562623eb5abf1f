package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ExportChecksum returns the hex SHA-256 of an exported file body.
// Sent alongside CSV downloads so operators can verify a file was not altered after export.
func ExportChecksum(body []byte) string {
	hash := sha256.Sum256(body)
	return hex.EncodeToString(hash[:])
}
