package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// ListTenants handles GET /tenants
// @Summary List tenants
// @Description Get tenants, active only by default. Pass includeArchived=true for all.
// @Tags tenants
// @Produce json
// @Param includeArchived query bool false "Include archived tenants"
// @Success 200 {array} models.Tenant "Successfully retrieved tenants"
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"

	tenants, err := h.tenantService.ListTenants(includeArchived)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch tenants")
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// CreateTenantBody represents the expected request body for POST /tenants
type CreateTenantBody struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Unit       string `json:"unit"`
	PropertyID string `json:"propertyId"`
}

// CreateTenant handles POST /tenants
// @Summary Add a new tenant
// @Description Create an active tenant. Rejects duplicate emails (409 DUPLICATE_EMAIL)
// @Description and emails of archived tenants (409 PREVIOUS_TENANT with archive context).
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body CreateTenantBody true "Tenant data"
// @Success 201 {object} models.Tenant "Successfully created tenant"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 409 {object} map[string]interface{} "Duplicate or previous tenant email"
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var body CreateTenantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	tenant, err := h.tenantService.CreateTenant(&service.CreateTenantRequest{
		Name:       body.Name,
		Email:      body.Email,
		Unit:       body.Unit,
		PropertyID: body.PropertyID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to add tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// ArchiveTenant handles DELETE /tenants/:id
// @Summary Archive a tenant
// @Description Soft-delete a tenant. The tenant row and its notes are retained.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body service.ArchiveTenantRequest false "Optional archive reason"
// @Success 200 {object} models.Tenant "Archived tenant"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Router /tenants/{id} [delete]
func (h *TenantHandler) ArchiveTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return
	}

	// Body is optional on DELETE
	var body service.ArchiveTenantRequest
	_ = c.ShouldBindJSON(&body)

	tenant, err := h.tenantService.ArchiveTenant(id, body.Reason)
	if err != nil {
		respondServiceError(c, err, "Failed to archive tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}
