// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 12

// accessKeyService implements the adapter.AccessKeyService interface.
type accessKeyService struct{}

// NewAccessKeyService creates a new access key service instance.
func NewAccessKeyService() adapter.AccessKeyService {
	return &accessKeyService{}
}

// HashAccessKey hashes a plain access key using bcrypt with cost 12.
func (s *accessKeyService) HashAccessKey(key string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyAccessKey compares a plain access key against the configured hash.
func (s *accessKeyService) VerifyAccessKey(hashedKey, key string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
}
