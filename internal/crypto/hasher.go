// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"golang.org/x/crypto/argon2"
)

const saltLength = 16 // 128 bits

// NewHasher returns the [Hasher] for the configured scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case config.HashSchemeHMACSHA256, "":
		return &hmacHasher{}, nil
	case config.HashSchemeArgon2id:
		return newArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashScheme, scheme)
	}
}

// newSalt returns 16 random bytes, hex-encoded.
func newSalt() string {
	salt := make([]byte, saltLength)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(salt)
	return hex.EncodeToString(salt)
}

func matches(h Hasher, plaintext string, stored Credential) bool {
	derived := h.DeriveWithSalt(plaintext, stored.Salt)
	return subtle.ConstantTimeCompare([]byte(derived.Digest), []byte(stored.Digest)) == 1
}

// hmacHasher keys HMAC-SHA256 with the salt and hex-encodes the result.
type hmacHasher struct{}

func (h *hmacHasher) Derive(plaintext string) Credential {
	return h.DeriveWithSalt(plaintext, newSalt())
}

func (h *hmacHasher) DeriveWithSalt(plaintext, salt string) Credential {
	return Credential{
		Digest: utils.HashString(plaintext, salt),
		Salt:   salt,
	}
}

func (h *hmacHasher) Matches(plaintext string, stored Credential) bool {
	return matches(h, plaintext, stored)
}

// argon2idHasher derives a 256-bit argon2id key, hex-encoded. The hex salt
// string itself is the argon2 salt input.
type argon2idHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// newArgon2idHasher uses the OWASP parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newArgon2idHasher() *argon2idHasher {
	return &argon2idHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

func (h *argon2idHasher) Derive(plaintext string) Credential {
	return h.DeriveWithSalt(plaintext, newSalt())
}

func (h *argon2idHasher) DeriveWithSalt(plaintext, salt string) Credential {
	key := argon2.IDKey(
		[]byte(plaintext),
		[]byte(salt),
		h.argonTime,
		h.argonMemory,
		h.argonThreads,
		h.argonKeyLen,
	)
	return Credential{
		Digest: hex.EncodeToString(key),
		Salt:   salt,
	}
}

func (h *argon2idHasher) Matches(plaintext string, stored Credential) bool {
	return matches(h, plaintext, stored)
}
