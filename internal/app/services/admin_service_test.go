package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngvthanh/classform/internal/pkg/apperrors"
	"github.com/ngvthanh/classform/internal/pkg/auth"
)

func newTestAdminService(secret string) AdminService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   secret,
		TokenExp:    time.Hour,
		TokenIssuer: "classform.test",
	})
	return NewAdminService(secret, jwtService, zerolog.Nop())
}

func TestAuthorize_PlaintextSecret(t *testing.T) {
	svc := newTestAdminService("admin123")

	assert.True(t, svc.Authorize("admin123"))
	assert.False(t, svc.Authorize("admin124"))
	assert.False(t, svc.Authorize("ADMIN123"))
	assert.False(t, svc.Authorize(""))
}

func TestAuthorize_BcryptSecret(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	svc := newTestAdminService(hash)

	assert.True(t, svc.Authorize("s3cret"))
	assert.False(t, svc.Authorize(hash), "the hash itself is not the secret")
	assert.False(t, svc.Authorize(""))
}

func TestLogin_IssuesValidatableToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "admin123",
		TokenExp:    time.Hour,
		TokenIssuer: "classform.test",
	})
	svc := NewAdminService("admin123", jwtService, zerolog.Nop())

	session, err := svc.Login("admin123")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 3600, session.ExpiresIn)

	claims, err := jwtService.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_RejectsWrongSecret(t *testing.T) {
	svc := newTestAdminService("admin123")

	session, err := svc.Login("wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, session)
}
