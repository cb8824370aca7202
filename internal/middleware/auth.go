// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

func AuthRequired(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		identity, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenExpired))
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", identity.UserID)
		c.Set("user_email", identity.Email)
		c.Set("user_role", string(identity.Role))
		c.Set("student_id", identity.StudentID)
		c.Next()
	}
}

func AdminRequired() gin.HandlerFunc {
	return RoleRequired(i18n.KeyAdminAccessDenied, models.RoleAdmin)
}

// StudentRequired also insists on a linked student profile id.
func StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := utils.GetUserRoleFromContext(c)
		_, hasStudent := utils.GetStudentIDFromContext(c)
		if role != string(models.RoleStudent) || !hasStudent {
			utils.ForbiddenResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyStudentAccessDenied))
			c.Abort()
			return
		}
		c.Next()
	}
}

func RoleRequired(deniedKey string, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := utils.GetUserRoleFromContext(c)
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		utils.ForbiddenResponse(c, i18n.T(utils.GetLangFromContext(c), deniedKey))
		c.Abort()
	}
}
