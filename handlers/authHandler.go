package handlers

import (
	"MediBook/services"
	"MediBook/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService *services.AuthService
	Notifier    *services.Notifier
}

func NewAuthHandler(authService *services.AuthService, notifier *services.Notifier) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Notifier:    notifier,
	}
}

// Register handles new user registration. Every self-registered account
// is a patient; doctor profiles are created by admins.
func (h *AuthHandler) Register(c *gin.Context) {
	var in utils.RegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.AuthService.Register(ctx, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(201, gin.H{"id": user.ID, "username": user.Username})
}

// Login authenticates the user and returns tokens along with user info
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"role":         user.Role,
	})
}

// RefreshToken refreshes the user's access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie(utils.RefreshTokenCookie)
	if err != nil || token == "" {
		token = c.DefaultQuery(utils.RefreshTokenCookie, "")
	}
	if token == "" {
		c.JSON(400, gin.H{"error": "Missing refresh token"})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(200, gin.H{"accessToken": accessToken})
}

// Logoff logs the user out by clearing cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// SendResetCode sends a password reset code to the user's email
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	code, err := h.AuthService.RequestPasswordReset(ctx, data.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to set reset code"})
		return
	}
	if code != "" {
		h.Notifier.Notify(services.Mail{
			To:      data.Email,
			Subject: "Password Reset Code",
			Body:    "Your password reset code is: " + code,
		})
	}

	// Same response whether or not the address exists.
	c.Status(200)
}

// ChangePassword exchanges a reset code for a new password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		ResetCode   string `json:"reset_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.AuthService.ResetPassword(ctx, data.Email, data.ResetCode, data.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(200)
}
