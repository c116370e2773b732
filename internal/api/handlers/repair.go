package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RepairHandler handles admin maintenance endpoints
type RepairHandler struct {
	repairService service.RepairServiceInterface
}

// NewRepairHandler creates a new repair handler
func NewRepairHandler(repairService service.RepairServiceInterface) *RepairHandler {
	return &RepairHandler{repairService: repairService}
}

// RepairTenantPropertyIDs handles POST /repair/tenant-property-ids
// @Summary Repair tenant property references
// @Description Scan every tenant (archived included) and rewrite legacy name-based
// @Description property references to real property ids. Idempotent; safe to re-run.
// @Tags repair
// @Produce json
// @Param X-Admin-Key header string true "Admin secret"
// @Success 200 {object} service.RepairReport "Repair report"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /repair/tenant-property-ids [post]
func (h *RepairHandler) RepairTenantPropertyIDs(c *gin.Context) {
	report, err := h.repairService.RepairTenantPropertyIDs()
	if err != nil {
		respondServiceError(c, err, "Repair failed")
		return
	}

	c.JSON(http.StatusOK, report)
}
