// Package handler exposes the HTTP resource handlers. Each handler
// family self-registers its routes on the /api group; role gating comes
// from the policy table via middleware.Guard, never from ad-hoc checks
// inside the handlers.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/service"
)

// parseIDParam parses a numeric path parameter, answering 400 itself on
// failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body("Identifiant invalide", apierr.Validation))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service sentinel errors onto the HTTP error
// taxonomy. Anything unmapped is an internal store failure: single
// attempt, fail closed, generic body.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrHabitatNotFound),
		errors.Is(err, service.ErrAnimalNotFound),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrAvisNotFound):
		c.JSON(http.StatusNotFound, apierr.Body(err.Error(), apierr.NotFound))
	case errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrHabitatHasAnimaux),
		errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusConflict, apierr.Body(err.Error(), apierr.Conflict))
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidAvisStatut):
		c.JSON(http.StatusBadRequest, apierr.Body(err.Error(), apierr.Validation))
	default:
		c.JSON(http.StatusInternalServerError, apierr.Body("Erreur serveur", apierr.Internal))
	}
}

// bindJSON wraps ShouldBindJSON with the shared validation error shape.
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Body(err.Error(), apierr.Validation))
		return false
	}
	return true
}
