package value

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainInputs separates input fingerprints from any other hash of the same
// bytes. The version suffix allows the encoding to change later.
const DomainInputs = "fnjudge/inputs/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a stable content ID for an input tuple.
// It identifies secret tests in reports without revealing their inputs.
func Fingerprint(inputs []any) (string, error) {
	if inputs == nil {
		inputs = []any{}
	}
	canonical, err := MarshalCanonical(inputs)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainInputs, canonical), nil
}

// ShortID truncates a fingerprint for display.
func ShortID(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
