// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler accepts a nil service when sign-in is delegated to Firebase.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if h.authService == nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthProviderExternal), nil)
		return
	}

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
			return
		}
		respondError(c, err, "auth")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"account":    authResponse.Account,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// GET /auth/me
func (h *AuthHandler) GetIdentity(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)
	role, _ := utils.GetUserRoleFromContext(c)
	studentID, _ := utils.GetStudentIDFromContext(c)
	email, _ := c.Get("user_email")

	utils.SuccessResponse(c, gin.H{
		"userId":    userID,
		"email":     email,
		"role":      role,
		"studentId": studentID,
	})
}
