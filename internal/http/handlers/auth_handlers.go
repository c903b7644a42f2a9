package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone" binding:"required"`
	Senha    string `json:"senha" binding:"required,min=6"`
}

// ForgotPasswordRequest represents a password-reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password-reset confirmation
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email e senha são obrigatórios"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário não encontrado"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Senha incorreta"})
		default:
			log.Printf("LOGIN_FAILED: email=%s error=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso!",
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"user_id":      result.User.ID,
		},
	})
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, telefone e senha são obrigatórios"})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Telefone, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Usuário já cadastrado"})
		case errors.Is(err, domain.ErrDuplicatePhone):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Telefone já cadastrado"})
		default:
			log.Printf("REGISTER_FAILED: email=%s error=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário cadastrado com sucesso!",
		"data":    gin.H{"user_id": user.ID},
	})
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email é obrigatório"})
		return
	}

	err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado"})
		case errors.Is(err, domain.ErrNotificationFailed):
			log.Printf("RESET_EMAIL_FAILED: error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao enviar email de recuperação"})
		default:
			log.Printf("RESET_REQUEST_FAILED: error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao processar solicitação"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email de redefinição enviado com sucesso"})
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token e nova senha são obrigatórios"})
		return
	}

	err := h.authSvc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Token inválido ou expirado"})
			return
		}
		log.Printf("RESET_CONFIRM_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao redefinir senha"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso"})
}

// Logout handles POST /auth/logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Sessão não encontrada"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao encerrar sessão"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada com sucesso"})
}
