package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	accountSvc domain.AccountService
	clientURL  string
}

// NewAuthHandlers creates new auth handlers. clientURL is linked from the
// confirmation success page.
func NewAuthHandlers(accountSvc domain.AccountService, clientURL string) *AuthHandlers {
	return &AuthHandlers{
		accountSvc: accountSvc,
		clientURL:  clientURL,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents OTP verification request
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResetPasswordRequest represents the final password change request
type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Register handles account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		case errors.Is(err, domain.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Registration successful. Check and confirm your email.",
			"user_id": account.ID,
		},
	})
}

// Confirm handles the emailed confirmation link
func (h *AuthHandlers) Confirm(c *gin.Context) {
	id := c.Param("id")

	if err := h.accountSvc.ConfirmEmail(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingInput), errors.Is(err, domain.ErrInvalidConfirmationLink):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid confirmation link"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm email"})
		}
		return
	}

	page := strings.Replace(verificationSuccessTemplate, "{url}", h.clientURL, 1)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Login handles login and sets the auth_token cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailNotAuthenticated):
			c.JSON(http.StatusConflict, gin.H{"error": "Email not confirmed"})
		case errors.Is(err, domain.ErrIncorrectPassword):
			c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect email or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", result.AccessToken, int(result.ExpiresIn), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":      "Login successful",
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"user": gin.H{
				"id":    result.Account.ID,
				"name":  result.Account.Name,
				"email": result.Account.Email,
				"roles": result.Account.Roles,
			},
		},
	})
}

// ForgotPassword handles password reset requests
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrEmailNotAuthenticated):
			c.JSON(http.StatusConflict, gin.H{"error": "Email not confirmed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reset code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Check your email for the reset code",
		},
	})
}

// VerifyOTP handles OTP verification and returns a reset token
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resetToken, err := h.accountSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrOTPInvalid) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid OTP code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":     "OTP verified",
			"reset_token": resetToken,
		},
	})
}

// ResetPassword handles the final password change after OTP verification
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountSvc.ResetPassword(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrTokenMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired reset token"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrMissingInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Password updated",
		},
	})
}

// Me handles getting the caller's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         account.ID,
			"name":       account.Name,
			"email":      account.Email,
			"confirmed":  account.Confirmed,
			"roles":      account.Roles,
			"created_at": account.CreatedAt,
			"updated_at": account.UpdatedAt,
		},
	})
}
