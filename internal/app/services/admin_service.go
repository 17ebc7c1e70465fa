package services

import (
	"github.com/rs/zerolog"

	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/pkg/apperrors"
	"github.com/ngvthanh/classform/internal/pkg/auth"
)

// AdminService guards every privileged operation with the shared secret
// and issues short-lived session tokens on successful login.
type AdminService interface {
	// Authorize reports whether the candidate matches the configured secret.
	// Stateless: callers re-check on every privileged call.
	Authorize(candidate string) bool
	// Login authorizes the candidate and issues a session token.
	Login(candidate string) (*dto.AdminSessionData, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	secret     string
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(secret string, jwtService *auth.JWTService, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		secret:     secret,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Authorize compares the candidate against the configured secret. A
// bcrypt-hashed secret is verified with bcrypt, a plaintext one with a
// constant-time comparison. There is no lockout on repeated failures.
func (s *adminServiceImpl) Authorize(candidate string) bool {
	if candidate == "" {
		return false
	}
	if auth.IsBcryptHash(s.secret) {
		return auth.CheckPassword(s.secret, candidate)
	}
	return auth.SecureCompare(s.secret, candidate)
}

// Login checks the secret and, on success, issues the session token the
// client re-sends on every privileged call.
func (s *adminServiceImpl) Login(candidate string) (*dto.AdminSessionData, error) {
	if !s.Authorize(candidate) {
		s.logger.Warn().Msg("Admin login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		s.logger.Error().Err(err).Msg("Error issuing admin token")
		return nil, err
	}

	s.logger.Info().Msg("Admin login accepted")
	return &dto.AdminSessionData{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
