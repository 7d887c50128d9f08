package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type HabitatHandler struct {
	habitatService service.HabitatService
}

func NewHabitatHandler(habitatService service.HabitatService) *HabitatHandler {
	return &HabitatHandler{habitatService: habitatService}
}

func (h *HabitatHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	habitats := router.Group("/habitats")
	{
		habitats.GET("", append(g.Check("habitats.list"), h.List)...)
		habitats.GET("/:id", append(g.Check("habitats.detail"), h.Get)...)
		habitats.POST("", append(g.Check("habitats.create"), h.Create)...)
		habitats.PUT("/:id", append(g.Check("habitats.update"), h.Update)...)
		habitats.DELETE("/:id", append(g.Check("habitats.delete"), h.Delete)...)

		habitats.GET("/:id/commentaires", append(g.Check("commentaires.list"), h.ListCommentaires)...)
		habitats.POST("/:id/commentaires", append(g.Check("commentaires.create"), h.AddCommentaire)...)
	}
}

// List returns every habitat with its animals embedded. Public.
// GET /api/habitats
func (h *HabitatHandler) List(c *gin.Context) {
	habitats, err := h.habitatService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, habitats)
}

// Get returns one habitat with its animals embedded. Public.
// GET /api/habitats/:id
func (h *HabitatHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	habitat, err := h.habitatService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, habitat)
}

// Create adds a habitat. Admin only.
// POST /api/habitats
func (h *HabitatHandler) Create(c *gin.Context) {
	var req dto.CreateHabitatRequest
	if !bindJSON(c, &req) {
		return
	}

	habitat, err := h.habitatService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habitat créé", "habitat": habitat})
}

// Update applies a partial habitat update. Admin only.
// PUT /api/habitats/:id
func (h *HabitatHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateHabitatRequest
	if !bindJSON(c, &req) {
		return
	}

	habitat, err := h.habitatService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habitat mis à jour", "habitat": habitat})
}

// Delete removes a habitat, refusing while animals still live in it.
// DELETE /api/habitats/:id
func (h *HabitatHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.habitatService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habitat supprimé avec succès"})
}

// ListCommentaires returns a habitat's vet comments. Admin or vet.
// GET /api/habitats/:id/commentaires
func (h *HabitatHandler) ListCommentaires(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	commentaires, err := h.habitatService.ListCommentaires(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentaires)
}

// AddCommentaire records a vet's habitat comment. Vet only.
// POST /api/habitats/:id/commentaires
func (h *HabitatHandler) AddCommentaire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
		return
	}

	var req dto.CreateCommentaireRequest
	if !bindJSON(c, &req) {
		return
	}

	commentaire, err := h.habitatService.AddCommentaire(id, callerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Commentaire ajouté avec succès",
		"commentaire": commentaire,
	})
}
