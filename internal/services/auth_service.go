package services

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "dream/internal/errors"
)

// authService checks the single owner's passcode against a bcrypt hash.
type authService struct {
	passcodeHash []byte
}

// NewAuthService creates a new AuthServicer. An empty hash disables
// authentication.
func NewAuthService(passcodeHash string) AuthServicer {
	return &authService{passcodeHash: []byte(passcodeHash)}
}

func (s *authService) Enabled() bool {
	return len(s.passcodeHash) > 0
}

func (s *authService) VerifyPasscode(passcode string) error {
	if !s.Enabled() {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Passcode lock is not enabled")
	}
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
