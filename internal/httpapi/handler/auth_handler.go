package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type AuthHandler struct {
	authService service.AuthService
	rateLimit   gin.HandlerFunc
}

func NewAuthHandler(authService service.AuthService, rateLimit gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{authService: authService, rateLimit: rateLimit}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	router.POST("/login", append(append(g.Check("auth.login"), h.rateLimit), h.Login)...)
	router.GET("/protected", append(g.Check("auth.protected"), h.Protected)...)
}

// Login verifies credentials and issues a 24h session token.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierr.Body(err.Error(), apierr.Authentication))
			return
		}
		c.JSON(http.StatusInternalServerError, apierr.Body("Erreur serveur", apierr.Internal))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Connexion réussie",
		Token:   token,
		User: dto.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Protected is a smoke-test route for token validation.
// GET /api/protected
func (h *AuthHandler) Protected(c *gin.Context) {
	claims, _ := c.Get("claims")
	c.JSON(http.StatusOK, gin.H{
		"message": "Accès autorisé !",
		"user":    claims,
	})
}
