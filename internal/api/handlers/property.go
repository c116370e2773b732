package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties handles GET /properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {array} models.Property "Successfully retrieved properties"
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

// CreatePropertyBody represents the expected request body for POST /properties
type CreatePropertyBody struct {
	Name     string `json:"name"`
	Suite    string `json:"suite"`
	PhotoURL string `json:"photoUrl"`
}

// CreateProperty handles POST /properties
// @Summary Add a new property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body CreatePropertyBody true "Property data"
// @Success 201 {object} models.Property "Successfully created property"
// @Failure 400 {object} map[string]interface{} "Missing property name"
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var body CreatePropertyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing property name"})
		return
	}

	property, err := h.propertyService.CreateProperty(&service.CreatePropertyRequest{
		Name:     body.Name,
		Suite:    body.Suite,
		PhotoURL: body.PhotoURL,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to add property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// DeleteProperty handles DELETE /properties/:id
// @Summary Delete a property
// @Description Delete a property only if no active tenants reference it.
// @Description Archived tenant references never block deletion.
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]interface{} "Property has active tenants"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	if err := h.propertyService.DeleteProperty(id); err != nil {
		respondServiceError(c, err, "Failed to delete property")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}
