package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	referencePrefix     = "BK"
	referenceTimeFormat = "20060102150405"
	referenceSuffixLen  = 6
	referenceCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateReference builds a booking reference: BK + creation timestamp
// + 6 random characters, e.g. BK20250115103000A1B2C3.
// The random suffix keeps references created within the same second unique.
func GenerateReference(now time.Time) (string, error) {
	buf := make([]byte, referenceSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("domain: GenerateReference - read random: %w", err)
	}
	for i, b := range buf {
		buf[i] = referenceCharset[int(b)%len(referenceCharset)]
	}
	return referencePrefix + now.Format(referenceTimeFormat) + string(buf), nil
}
