package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters. These are fixed at compile time; hashes embed
// the parameters they were produced with, so tuning these does not
// invalidate existing hashes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

const tokenChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

// HashPassword hashes a plaintext password with Argon2id using a fresh
// random salt and returns the result in PHC string format:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "error generating salt")
	}
	hash := argon2.IDKey(
		[]byte(password),
		salt,
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks a plaintext password against a stored PHC-format
// Argon2id hash. The candidate hash is recomputed with the salt and cost
// parameters embedded in the stored hash and compared in constant time.
// A malformed or unsupported stored hash verifies false-- callers must not
// be able to distinguish that case from a wrong password. The returned
// error exists solely so callers can log a data-integrity warning.
func VerifyPassword(password, encodedHash string) (bool, error) {
	salt, hash, params, err := decodePHC(encodedHash)
	if err != nil {
		return false, err
	}
	candidate := argon2.IDKey(
		[]byte(password),
		salt,
		params.time,
		params.memory,
		params.threads,
		uint32(len(hash)),
	)
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// NewToken returns a random token of the specified length drawn from an
// alphanumeric alphabet using a cryptographically secure source. Uniqueness
// is probabilistic only, but with 62^128 possible values a collision would
// be extraordinary.
func NewToken(tokenLength int) string {
	b := make([]byte, tokenLength)
	randBytes := make([]byte, tokenLength)
	i := 0
	for i < tokenLength {
		if _, err := rand.Read(randBytes); err != nil {
			// An unreadable system entropy source is not a recoverable
			// condition.
			panic(errors.Wrap(err, "error reading from system entropy source"))
		}
		for _, rb := range randBytes {
			// Rejection sampling keeps the distribution over the alphabet
			// uniform.
			if int(rb) >= 256-256%len(tokenChars) {
				continue
			}
			b[i] = tokenChars[int(rb)%len(tokenChars)]
			i++
			if i == tokenLength {
				break
			}
		}
	}
	return string(b)
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

func decodePHC(encoded string) ([]byte, []byte, argonParams, error) {
	var params argonParams
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, params, errors.New("invalid PHC hash format")
	}
	if parts[1] != "argon2id" {
		return nil, nil, params,
			errors.Errorf("unsupported algorithm %q", parts[1])
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, errors.Wrap(err, "error parsing version")
	}
	if version != argon2.Version {
		return nil, nil, params,
			errors.Errorf("unsupported argon2 version %d", version)
	}
	if _, err := fmt.Sscanf(
		parts[3],
		"m=%d,t=%d,p=%d",
		&params.memory,
		&params.time,
		&params.threads,
	); err != nil {
		return nil, nil, params, errors.Wrap(err, "error parsing parameters")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, errors.Wrap(err, "error decoding salt")
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, errors.Wrap(err, "error decoding hash")
	}
	return salt, hash, params, nil
}
