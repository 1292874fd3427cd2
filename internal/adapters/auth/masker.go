package auth

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"

	"weddingrsvp/internal/domain"
)

// ErrEmptySalt is returned when a masker is built without a salt.
var ErrEmptySalt = errors.New("mask salt must not be empty")

type blake2bMasker struct {
	key []byte
}

// NewBlake2bMasker returns an IdentityMasker computing keyed BLAKE2b-256 over the internal id,
// keyed by salt. Salts longer than the 64-byte key limit are first reduced with BLAKE2b-512.
func NewBlake2bMasker(salt string) (domain.IdentityMasker, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	// Fail here rather than on every Mask call.
	if _, err := blake2b.New256(key); err != nil {
		return nil, err
	}
	return &blake2bMasker{key: key}, nil
}

func (m *blake2bMasker) Mask(internalID string) string {
	h, _ := blake2b.New256(m.key)
	h.Write([]byte(internalID))
	return hex.EncodeToString(h.Sum(nil))
}
