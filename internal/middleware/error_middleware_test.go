package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngvthanh/classform/internal/pkg/apperrors"
)

func handleError(err error, fallback ...string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err, fallback...)
	return rec
}

func TestHandleAPIError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperrors.NewValidationError("bad field"), http.StatusBadRequest, "Invalid request data"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect password"},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Unauthorized"},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Unauthorized"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantError)
		})
	}
}

func TestHandleAPIError_FallbackMessage(t *testing.T) {
	rec := handleError(errors.New("connection reset"), "Failed to fetch submissions")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch submissions")
}
