package middleware

import (
	"net/http"
	"strings"

	"rids_ngo/internal/infrastructure/auth"
	"rids_ngo/pkg"

	"github.com/gin-gonic/gin"
)

// AdminEmailKey is the gin context key holding the authenticated admin email.
const AdminEmailKey = "admin_email"

// RequireAdmin guards admin routes with a bearer JWT.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c)
			return
		}

		email, err := auth.ParseAdminToken(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(AdminEmailKey, email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Could not validate credentials", http.StatusUnauthorized)
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
