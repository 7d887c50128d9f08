package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type ConsommationHandler struct {
	consommationService service.ConsommationService
}

func NewConsommationHandler(consommationService service.ConsommationService) *ConsommationHandler {
	return &ConsommationHandler{consommationService: consommationService}
}

func (h *ConsommationHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	consommations := router.Group("/consommations")
	{
		consommations.GET("", append(g.Check("consommations.list"), h.List)...)
		consommations.POST("", append(g.Check("consommations.create"), h.Create)...)
	}
}

// List returns every feeding log, most recent first. Any authenticated staff.
// GET /api/consommations
func (h *ConsommationHandler) List(c *gin.Context) {
	consommations, err := h.consommationService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consommations)
}

// Create records a feeding. Employee only.
// POST /api/consommations
func (h *ConsommationHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
		return
	}

	var req dto.CreateConsommationRequest
	if !bindJSON(c, &req) {
		return
	}

	consommation, err := h.consommationService.Create(callerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Consommation enregistrée",
		"consommation": consommation,
	})
}
