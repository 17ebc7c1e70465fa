package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/app/services"
	"github.com/ngvthanh/classform/internal/pkg/auth"
)

// AdminMiddleware guards the privileged reporting endpoints
type AdminMiddleware struct {
	jwtService   *auth.JWTService
	adminService services.AdminService
}

// NewAdminMiddleware creates a new AdminMiddleware
func NewAdminMiddleware(jwtService *auth.JWTService, adminService services.AdminService) *AdminMiddleware {
	return &AdminMiddleware{
		jwtService:   jwtService,
		adminService: adminService,
	}
}

// RequireAdmin validates the caller's credential on every call and fails
// closed without one. Accepted forms, in order:
//   - Authorization header (Bearer or raw token)
//   - token query parameter (used by plain navigation downloads)
//   - password query parameter, re-checked against the admin gate
//     (the pre-token surface; kept so existing clients keep working)
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			extracted, err := auth.ExtractBearerToken(authHeader)
			if err == nil {
				tokenString = extracted
			}
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString != "" {
			if _, err := m.jwtService.ValidateToken(tokenString); err == nil {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		if password := c.Query("password"); password != "" && m.adminService.Authorize(password) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
	}
}
