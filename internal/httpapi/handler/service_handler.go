package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type ServiceHandler struct {
	catalogService service.CatalogService
}

func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

func (h *ServiceHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	services := router.Group("/services")
	{
		services.GET("", append(g.Check("services.list"), h.List)...)
		services.POST("", append(g.Check("services.create"), h.Create)...)
		services.PUT("/:id", append(g.Check("services.update"), h.Update)...)
		services.DELETE("/:id", append(g.Check("services.delete"), h.Delete)...)
	}
}

// List returns every visitor service. Public.
// GET /api/services
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalogService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Create adds a service. Admin or employee.
// POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.catalogService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service créé", "service": created})
}

// Update applies a partial service update. Admin only.
// PUT /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.catalogService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Service mis à jour avec succès",
		"service": updated,
	})
}

// Delete removes a service. Admin only.
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service supprimé avec succès"})
}
