package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Upper bound on input so hashing cost stays bounded.
const maxPasswordLength = 1024

// hashParams are the Argon2id cost settings. New hashes use defaultHashParams;
// verification reads them back from the stored PHC string.
type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen int
	keyLen  uint32
}

var defaultHashParams = hashParams{
	memory:  64 * 1024,
	time:    3,
	threads: 4,
	saltLen: 16,
	keyLen:  32,
}

var errMalformedHash = errors.New("malformed password hash")

var b64 = base64.RawStdEncoding

// HashPassword returns the PHC-formatted Argon2id hash of password.
func HashPassword(password string) (string, error) {
	switch {
	case password == "":
		return "", errors.New("password cannot be empty")
	case len(password) > maxPasswordLength:
		return "", errors.New("password exceeds maximum length")
	}

	p := defaultHashParams
	salt := make([]byte, p.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads, b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches encoded. A malformed hash
// is a mismatch rather than an error so callers cannot tell the two apart.
func VerifyPassword(encoded, password string) (bool, error) {
	if len(password) > maxPasswordLength {
		return false, nil
	}
	p, salt, want, err := parseHash(encoded)
	if err != nil {
		return false, nil //nolint:nilerr // malformed hashes never match
	}
	got := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

func parseHash(encoded string) (hashParams, []byte, []byte, error) {
	var (
		p       hashParams
		version int
	)
	i := strings.LastIndexByte(encoded, '$')
	if i < 0 {
		return p, nil, nil, errMalformedHash
	}
	rest, keyPart := encoded[:i], encoded[i+1:]
	j := strings.LastIndexByte(rest, '$')
	if j < 0 {
		return p, nil, nil, errMalformedHash
	}
	head, saltPart := rest[:j], rest[j+1:]

	if _, err := fmt.Sscanf(head, "$argon2id$v=%d$m=%d,t=%d,p=%d", &version, &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, errMalformedHash
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	salt, err := b64.DecodeString(saltPart)
	if err != nil {
		return p, nil, nil, errMalformedHash
	}
	key, err := b64.DecodeString(keyPart)
	if err != nil || len(key) == 0 {
		return p, nil, nil, errMalformedHash
	}
	p.saltLen = len(salt)
	p.keyLen = uint32(len(key)) //nolint:gosec // bounded by the stored hash
	return p, salt, key, nil
}
