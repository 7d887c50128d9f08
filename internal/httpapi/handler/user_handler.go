package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	users := router.Group("/users")
	{
		users.POST("", append(g.Check("users.create"), h.Create)...)
		users.GET("", append(g.Check("users.list"), h.List)...)
		users.PUT("/:id", append(g.Check("users.update"), h.Update)...)
		users.DELETE("/:id", append(g.Check("users.delete"), h.Delete)...)
	}
}

// Create registers a staff account. Admin only.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(req.Email, req.Password, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Utilisateur créé",
		"user":    user,
	})
}

// List returns all users, newest first, password hashes excluded.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Liste des utilisateurs",
		"users":   users,
	})
}

// Update applies a partial email/role/password update.
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Utilisateur mis à jour avec succès",
		"user": dto.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Delete removes a user; an admin cannot delete their own account.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
		return
	}

	user, err := h.userService.Delete(id, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Utilisateur supprimé avec succès",
		"deleted_user": dto.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
