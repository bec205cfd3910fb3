package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bellasalon/booking-api/internal/config"
	"github.com/bellasalon/booking-api/internal/httperr"
	"github.com/bellasalon/booking-api/internal/httpresp"
	"github.com/bellasalon/booking-api/internal/models"
	ucIdentity "github.com/bellasalon/booking-api/internal/usecase/identity"
)

type AuthHandler struct {
	identity *ucIdentity.Service
	config   *config.Config
}

func NewAuthHandler(identity *ucIdentity.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{identity: identity, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Nome, e-mail e senha são obrigatórios.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := h.identity.Register(c.Request.Context(), req.Name, email, req.Password)
	switch {
	case err == nil:
		httpresp.Success(c, "Registered — check your email to verify your account.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
	case httperr.IsBusiness(err, "email_taken"):
		httperr.Conflict(c, "email_taken", "E-mail já registrado.")
	default:
		httperr.Internal(c, "internal_error", "Erro ao registrar.")
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "E-mail e senha são obrigatórios.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.identity.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao autenticar.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	verified := 0
	if user.Verified {
		verified = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"verified": verified,
	})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_email", "E-mail é obrigatório.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := h.identity.ResendVerification(c.Request.Context(), email)
	switch {
	case err == nil:
		httpresp.Success(c, "Verification email resent")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
	case httperr.IsBusiness(err, "already_verified"):
		httperr.BadRequest(c, "already_verified", "Usuário já verificado.")
	default:
		httperr.Internal(c, "internal_error", "Erro ao reenviar verificação.")
	}
}

// Verify responde texto puro: o link chega por e-mail e abre direto no
// navegador.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.String(http.StatusBadRequest, "Missing token")
		return
	}

	if err := h.identity.Verify(c.Request.Context(), token); err != nil {
		c.String(http.StatusBadRequest, "Invalid token")
		return
	}

	c.String(http.StatusOK, "Email verified. You can now login.")
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_email", "E-mail é obrigatório.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := h.identity.RequestReset(c.Request.Context(), email)
	switch {
	case err == nil:
		httpresp.Success(c, "Password reset email sent")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
	default:
		httperr.Internal(c, "internal_error", "Erro ao solicitar reset.")
	}
}

func (h *AuthHandler) CompletePasswordReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Token e senha são obrigatórios.")
		return
	}

	err := h.identity.CompleteReset(c.Request.Context(), req.Token, req.Password)
	switch {
	case err == nil:
		httpresp.Success(c, "Password updated")
	case httperr.IsBusiness(err, "invalid_or_expired_token"):
		httperr.BadRequest(c, "invalid_or_expired_token", "Token inválido ou expirado.")
	default:
		httperr.Internal(c, "internal_error", "Erro ao atualizar senha.")
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
