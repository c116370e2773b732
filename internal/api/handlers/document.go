package handlers

import (
	"net/http"

	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// ListDocuments handles GET /documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} models.Document "Successfully retrieved documents"
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	documents, err := h.documentService.ListDocuments()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// UploadDocument handles POST /documents
// @Summary Upload a document
// @Description Multipart upload: type (lease|maintenance|inspection|vacate|other), label, file (PDF only).
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param type formData string true "Document type"
// @Param label formData string true "Document label"
// @Param file formData file true "PDF file"
// @Success 201 {object} models.Document "Successfully uploaded document"
// @Failure 400 {object} map[string]interface{} "Invalid type, missing parts, or non-PDF file"
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing type, label, or file"})
		return
	}

	document, err := h.documentService.UploadDocument(&service.UploadDocumentRequest{
		Type:  c.PostForm("type"),
		Label: c.PostForm("label"),
		File:  file,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to upload document")
		return
	}

	c.JSON(http.StatusCreated, document)
}
