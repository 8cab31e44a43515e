// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // accepted only to verify credentials stored with it
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"foodlog/config"
	"foodlog/internal/domain/service"
)

const (
	credentialScheme    = "pbkdf2"
	credentialSeparator = "$"
	credentialFields    = 5

	minSaltLength    = 16
	minIterations    = 100_000
	maxIterations    = 10_000_000
	minKeyLength     = 16
	maxStoredKeySize = 1024
)

var digests = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// pbkdf2Codec is a concrete implementation of the CredentialCodec interface using PBKDF2-HMAC.
type pbkdf2Codec struct {
	digest     string
	iterations int
	keyLength  int
	saltLength int
	random     io.Reader
}

// NewPBKDF2Codec is the constructor for pbkdf2Codec.
// Parameters come from the credential section of the config and are checked against safe minimums.
func NewPBKDF2Codec(cfg *config.Config) (service.CredentialCodec, error) {
	params := config.CredentialConfig{
		Digest:     config.DefaultCredentialDigest,
		Iterations: config.DefaultCredentialIterations,
		KeyLength:  config.DefaultCredentialKeyLength,
		SaltLength: config.DefaultCredentialSaltLength,
	}
	if cfg != nil && cfg.Credential != nil {
		params = *cfg.Credential
	}

	return newPBKDF2Codec(params, rand.Reader)
}

func newPBKDF2Codec(params config.CredentialConfig, random io.Reader) (*pbkdf2Codec, error) {
	digest := strings.ToLower(strings.TrimSpace(params.Digest))
	if _, ok := digests[digest]; !ok {
		return nil, errors.Errorf("unsupported credential digest %q", params.Digest)
	}
	if params.Iterations < minIterations || params.Iterations > maxIterations {
		return nil, errors.Errorf("credential iterations must be between %d and %d, got %d", minIterations, maxIterations, params.Iterations)
	}
	if params.KeyLength < minKeyLength || params.KeyLength > maxStoredKeySize {
		return nil, errors.Errorf("credential key length must be between %d and %d, got %d", minKeyLength, maxStoredKeySize, params.KeyLength)
	}
	if params.SaltLength < minSaltLength {
		return nil, errors.Errorf("credential salt length must be at least %d, got %d", minSaltLength, params.SaltLength)
	}

	return &pbkdf2Codec{
		digest:     digest,
		iterations: params.Iterations,
		keyLength:  params.KeyLength,
		saltLength: params.SaltLength,
		random:     random,
	}, nil
}

// Encode derives a credential of the form pbkdf2$digest$iterations$salt$key.
// The hex text of the salt is the KDF salt input, which keeps existing rows verifiable.
func (c *pbkdf2Codec) Encode(plaintext string) (string, error) {
	salt := make([]byte, c.saltLength)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", errors.Wrapf(service.ErrCredentialEncoding, "read salt: %v", err)
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(plaintext), []byte(saltHex), c.iterations, c.keyLength, digests[c.digest])

	return strings.Join([]string{
		credentialScheme,
		c.digest,
		strconv.Itoa(c.iterations),
		saltHex,
		hex.EncodeToString(key),
	}, credentialSeparator), nil
}

// Verify re-derives a key of the configured length with the digest, iterations and salt recorded in
// stored and compares in constant time. A stored key of any other length never matches.
func (c *pbkdf2Codec) Verify(plaintext, stored string) (bool, error) {
	parsed, err := parseCredential(stored)
	if err != nil {
		return false, err
	}

	derived := pbkdf2.Key([]byte(plaintext), []byte(parsed.saltHex), parsed.iterations, c.keyLength, digests[parsed.digest])
	if len(derived) != len(parsed.key) {
		return false, nil
	}

	return subtle.ConstantTimeCompare(derived, parsed.key) == 1, nil
}

// NeedsRehash reports whether stored was produced with another digest, fewer iterations or another key length than configured.
// Unparseable credentials always need a rehash.
func (c *pbkdf2Codec) NeedsRehash(stored string) bool {
	parsed, err := parseCredential(stored)
	if err != nil {
		return true
	}

	return parsed.digest != c.digest || parsed.iterations < c.iterations || len(parsed.key) != c.keyLength
}

type credential struct {
	digest     string
	iterations int
	saltHex    string
	key        []byte
}

func parseCredential(stored string) (*credential, error) {
	fields := strings.Split(stored, credentialSeparator)
	if len(fields) != credentialFields {
		return nil, errors.Wrapf(service.ErrMalformedCredential, "expected %d fields, got %d", credentialFields, len(fields))
	}

	scheme, digest, rawIterations, saltHex, keyHex := fields[0], fields[1], fields[2], fields[3], fields[4]
	if scheme != credentialScheme {
		return nil, errors.Wrapf(service.ErrMalformedCredential, "unknown scheme %q", scheme)
	}
	if _, ok := digests[digest]; !ok {
		return nil, errors.Wrapf(service.ErrMalformedCredential, "unknown digest %q", digest)
	}

	iterations, err := strconv.Atoi(rawIterations)
	if err != nil || iterations < 1 || iterations > maxIterations {
		return nil, errors.Wrapf(service.ErrMalformedCredential, "invalid iteration count %q", rawIterations)
	}

	if saltHex == "" {
		return nil, errors.Wrap(service.ErrMalformedCredential, "empty salt")
	}
	if _, err := hex.DecodeString(saltHex); err != nil {
		return nil, errors.Wrap(service.ErrMalformedCredential, "salt is not hex")
	}

	if keyHex == "" {
		return nil, errors.Wrap(service.ErrMalformedCredential, "empty key")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.Wrap(service.ErrMalformedCredential, "key is not hex")
	}
	if len(key) < minKeyLength || len(key) > maxStoredKeySize {
		return nil, errors.Wrapf(service.ErrMalformedCredential, "key length %d out of range", len(key))
	}

	return &credential{
		digest:     digest,
		iterations: iterations,
		saltHex:    saltHex,
		key:        key,
	}, nil
}
