package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/middleware"
)

// ContactHandler accepts visitor contact messages. Nothing is
// persisted: the message is logged with a reference the visitor can
// quote in a follow-up.
type ContactHandler struct {
	logger *slog.Logger
}

func NewContactHandler(logger *slog.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	router.POST("/contact", append(g.Check("contact.create"), h.Create)...)
}

// Create logs a contact message. Public.
// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	reference := uuid.New().String()
	h.logger.Info("contact message received",
		"reference", reference,
		"titre", req.Titre,
		"email", req.Email,
	)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Votre message a été envoyé. Nous vous répondrons rapidement.",
		"reference": reference,
	})
}
