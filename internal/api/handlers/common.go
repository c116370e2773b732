package handlers

import (
	"errors"
	"net/http"

	apperrors "property-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a typed service error onto its HTTP status and a
// structured body. Rejections that share a status always carry a
// distinguishing code so clients never have to parse message text.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var (
		notFound    *apperrors.NotFoundError
		validation  *apperrors.ValidationError
		duplicate   *apperrors.DuplicateEmailError
		previous    *apperrors.PreviousTenantError
		hasTenants  *apperrors.PropertyHasTenantsError
		configError *apperrors.ConfigurationError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})

	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})

	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Tenant email already exists.",
			"code":     duplicate.Code(),
			"tenantId": duplicate.TenantID,
		})

	case errors.As(err, &previous):
		c.JSON(http.StatusConflict, gin.H{
			"error":          "This email belongs to a previous tenant. Review notes before re-adding.",
			"code":           previous.Code(),
			"tenantId":       previous.TenantID,
			"archivedAt":     previous.ArchivedAt,
			"archivedReason": previous.ArchivedReason,
			"noteCount":      previous.NoteCount,
		})

	case errors.As(err, &hasTenants):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "Cannot delete property with active tenants.",
			"code":              hasTenants.Code(),
			"activeTenantCount": hasTenants.ActiveTenantCount,
		})

	case errors.As(err, &configError):
		c.JSON(http.StatusInternalServerError, gin.H{"error": configError.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
