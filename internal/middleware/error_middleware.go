package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/pkg/apperrors"
	"github.com/ngvthanh/classform/internal/pkg/logger"
)

// HandleAPIError maps service errors to API responses. Clients only ever
// see generic messages; the full error is logged server-side. An optional
// fallback overrides the default 500 message so endpoints can keep their
// historical wording.
func HandleAPIError(c *gin.Context, err error, fallback ...string) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Incorrect password"))
		return
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	default:
		message := "Internal server error"
		if len(fallback) > 0 && fallback[0] != "" {
			message = fallback[0]
		}
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
		return
	}
}
