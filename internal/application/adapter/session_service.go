// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// AccessKeyService verifies the single-owner access key.
type AccessKeyService interface {
	// HashAccessKey hashes a plain access key for storage in configuration.
	HashAccessKey(key string) (string, error)

	// VerifyAccessKey compares a plain access key against the configured hash.
	VerifyAccessKey(hashedKey, key string) error
}

// TokenService issues and validates session tokens for the single owner.
type TokenService interface {
	// GenerateSessionToken issues a signed session token.
	GenerateSessionToken() (string, error)

	// ValidateSessionToken checks a session token and returns an error when it
	// is malformed, tampered with, or expired.
	ValidateSessionToken(token string) error
}
