package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type RapportHandler struct {
	rapportService service.RapportService
}

func NewRapportHandler(rapportService service.RapportService) *RapportHandler {
	return &RapportHandler{rapportService: rapportService}
}

func (h *RapportHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	rapports := router.Group("/rapports")
	{
		rapports.GET("", append(g.Check("rapports.list"), h.List)...)
		rapports.POST("", append(g.Check("rapports.create"), h.Create)...)
	}
}

// List returns every vet report, most recent visit first. Admin only.
// GET /api/rapports
func (h *RapportHandler) List(c *gin.Context) {
	rapports, err := h.rapportService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rapports)
}

// Create records a vet report; reports are immutable afterwards. Vet only.
// POST /api/rapports
func (h *RapportHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
		return
	}

	var req dto.CreateRapportRequest
	if !bindJSON(c, &req) {
		return
	}

	rapport, err := h.rapportService.Create(callerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Rapport vétérinaire créé",
		"rapport": rapport,
	})
}
