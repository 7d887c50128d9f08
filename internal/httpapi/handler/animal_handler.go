package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type AnimalHandler struct {
	animalService service.AnimalService
}

func NewAnimalHandler(animalService service.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

func (h *AnimalHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	animaux := router.Group("/animaux")
	{
		animaux.GET("/:id", append(g.Check("animaux.detail"), h.Get)...)
		animaux.POST("/:id/view", append(g.Check("animaux.view"), h.RecordView)...)
		animaux.POST("", append(g.Check("animaux.create"), h.Create)...)
		animaux.PUT("/:id", append(g.Check("animaux.update"), h.Update)...)
		animaux.DELETE("/:id", append(g.Check("animaux.delete"), h.Delete)...)
	}
}

// Get returns one animal with habitat and latest vet report. Public.
// GET /api/animaux/:id
func (h *AnimalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	animal, err := h.animalService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// RecordView bumps the popularity counter. Public, best-effort: a
// counter-store outage never surfaces to the visitor.
// POST /api/animaux/:id/view
func (h *AnimalHandler) RecordView(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prenom, err := h.animalService.RecordView(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Consultation enregistrée",
		"animal":  prenom,
	})
}

// Create adds an animal to a habitat. Admin only.
// POST /api/animaux
func (h *AnimalHandler) Create(c *gin.Context) {
	var req dto.CreateAnimalRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.animalService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Animal créé avec succès",
		"animal":  animal,
	})
}

// Update applies a partial animal update. Admin only.
// PUT /api/animaux/:id
func (h *AnimalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAnimalRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.animalService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Animal mis à jour", "animal": animal})
}

// Delete removes an animal. Admin only.
// DELETE /api/animaux/:id
func (h *AnimalHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.animalService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Animal supprimé avec succès"})
}
