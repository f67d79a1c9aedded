// Package session contains the single-owner session use case.
package session

import (
	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateSessionInput represents the input for opening a session.
type CreateSessionInput struct {
	AccessKey string
}

// CreateSessionOutput represents the output of opening a session.
type CreateSessionOutput struct {
	Token string
}

// CreateSessionUseCase exchanges the configured owner access key for a
// signed session token. There is a single data scope, so no user lookup
// happens here.
type CreateSessionUseCase struct {
	hashedAccessKey  string
	accessKeyService adapter.AccessKeyService
	tokenService     adapter.TokenService
}

// NewCreateSessionUseCase creates a new CreateSessionUseCase instance.
func NewCreateSessionUseCase(
	hashedAccessKey string,
	accessKeyService adapter.AccessKeyService,
	tokenService adapter.TokenService,
) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		hashedAccessKey:  hashedAccessKey,
		accessKeyService: accessKeyService,
		tokenService:     tokenService,
	}
}

// Execute verifies the access key and issues a session token.
func (uc *CreateSessionUseCase) Execute(input CreateSessionInput) (*CreateSessionOutput, error) {
	if err := uc.accessKeyService.VerifyAccessKey(uc.hashedAccessKey, input.AccessKey); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidAccessKey,
			"access key does not match",
			domainerror.ErrInvalidAccessKey,
		)
	}

	token, err := uc.tokenService.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Token: token,
	}, nil
}
