package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type AvisHandler struct {
	avisService service.AvisService
}

func NewAvisHandler(avisService service.AvisService) *AvisHandler {
	return &AvisHandler{avisService: avisService}
}

func (h *AvisHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	avis := router.Group("/avis")
	{
		// /all before /:id so gin does not swallow it as a parameter
		avis.GET("/all", append(g.Check("avis.listAll"), h.ListAll)...)
		avis.GET("", append(g.Check("avis.list"), h.ListApproved)...)
		avis.POST("", append(g.Check("avis.create"), h.Create)...)
		avis.PUT("/:id", append(g.Check("avis.update"), h.Moderate)...)
	}
}

// ListApproved returns approved reviews only. Public.
// GET /api/avis
func (h *AvisHandler) ListApproved(c *gin.Context) {
	avis, err := h.avisService.ListApproved()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, avis)
}

// ListAll returns every review for moderation. Admin or employee.
// GET /api/avis/all
func (h *AvisHandler) ListAll(c *gin.Context) {
	avis, err := h.avisService.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, avis)
}

// Create records an anonymous visitor review, pending moderation. Public.
// POST /api/avis
func (h *AvisHandler) Create(c *gin.Context) {
	var req dto.CreateAvisRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.avisService.Submit(req.Pseudo, req.Texte); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Merci pour votre avis ! Il sera examiné par notre équipe.",
	})
}

// Moderate re-sets a review's status. Any authenticated staff member.
// PUT /api/avis/:id
func (h *AvisHandler) Moderate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
		return
	}

	var req dto.ModerateAvisRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.avisService.Moderate(id, req.Statut, callerID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avis mis à jour"})
}
