package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebflowHandler handles HTTP requests for the Webflow property mirror
type WebflowHandler struct {
	webflowService service.WebflowServiceInterface
}

// NewWebflowHandler creates a new Webflow handler
func NewWebflowHandler(webflowService service.WebflowServiceInterface) *WebflowHandler {
	return &WebflowHandler{webflowService: webflowService}
}

// ListProperties handles GET /webflow/properties
// @Summary List mirrored CMS properties
// @Tags webflow
// @Produce json
// @Success 200 {array} service.WebflowProperty "Mirrored properties"
// @Router /webflow/properties [get]
func (h *WebflowHandler) ListProperties(c *gin.Context) {
	properties, err := h.webflowService.ListProperties()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch Webflow properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

// CreateProperty handles POST /webflow/properties
// @Summary Create a mirrored CMS property
// @Tags webflow
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin secret"
// @Param property body service.CreateWebflowPropertyRequest true "Property data"
// @Success 201 {object} service.WebflowProperty "Created property"
// @Failure 400 {object} map[string]interface{} "Missing property name"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /webflow/properties [post]
func (h *WebflowHandler) CreateProperty(c *gin.Context) {
	var body service.CreateWebflowPropertyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property name is required"})
		return
	}

	property, err := h.webflowService.CreateProperty(&body)
	if err != nil {
		respondServiceError(c, err, "Failed to create Webflow property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// DeleteProperty handles DELETE /webflow/properties/:id
// @Summary Delete a mirrored CMS property
// @Tags webflow
// @Produce json
// @Param X-Admin-Key header string true "Admin secret"
// @Param id path string true "Webflow item ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /webflow/properties/{id} [delete]
func (h *WebflowHandler) DeleteProperty(c *gin.Context) {
	if err := h.webflowService.DeleteProperty(c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete Webflow property")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// BulkUpdate handles POST /webflow/properties/bulk-update
// @Summary Bulk-update CMS properties from a CSV
// @Description Multipart CSV upload. Header row: item_id plus field slugs; each row
// @Description is applied to its collection item. Row failures are reported, not fatal.
// @Tags webflow
// @Accept multipart/form-data
// @Produce json
// @Param X-Admin-Key header string true "Admin secret"
// @Param file formData file true "CSV file"
// @Success 200 {object} service.BulkUpdateReport "Bulk update report"
// @Failure 400 {object} map[string]interface{} "Missing or invalid CSV"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /webflow/properties/bulk-update [post]
func (h *WebflowHandler) BulkUpdate(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable CSV file"})
		return
	}
	defer src.Close()

	report, err := h.webflowService.BulkUpdateFromCSV(src)
	if err != nil {
		respondServiceError(c, err, "Bulk update failed")
		return
	}

	c.JSON(http.StatusOK, report)
}
