package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles HTTP requests for tenant notes
type NoteHandler struct {
	noteService service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// ListTenantNotes handles GET /tenants/:id/notes
// @Summary List a tenant's notes
// @Description Notes are returned newest first and remain available after the tenant is archived.
// @Tags notes
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {array} models.Note "Successfully retrieved notes"
// @Router /tenants/{id}/notes [get]
func (h *NoteHandler) ListTenantNotes(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return
	}

	notes, err := h.noteService.ListNotesByTenant(tenantID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNoteBody represents the expected request body for POST /tenants/:id/notes
type CreateNoteBody struct {
	Text       string     `json:"text"`
	PropertyID *uuid.UUID `json:"propertyId"`
	Tags       []string   `json:"tags"`
}

// CreateTenantNote handles POST /tenants/:id/notes
// @Summary Add a note for a tenant
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param note body CreateNoteBody true "Note data"
// @Success 201 {object} models.Note "Successfully created note"
// @Failure 400 {object} map[string]interface{} "Missing note text"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Router /tenants/{id}/notes [post]
func (h *NoteHandler) CreateTenantNote(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
		return
	}

	var body CreateNoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing note text"})
		return
	}

	note, err := h.noteService.CreateNote(tenantID, &service.CreateNoteRequest{
		Text:       body.Text,
		PropertyID: body.PropertyID,
		Tags:       body.Tags,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to save note")
		return
	}

	c.JSON(http.StatusCreated, note)
}

// DeleteNote handles DELETE /notes/:id
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	if err := h.noteService.DeleteNote(id); err != nil {
		respondServiceError(c, err, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
