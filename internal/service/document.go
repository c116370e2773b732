package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/gabriel-vasile/mimetype"
)

// DocumentService handles uploaded document metadata and file storage
type DocumentService struct {
	repo      repository.DocumentRepositoryInterface
	uploadDir string
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, uploadDir string) *DocumentService {
	return &DocumentService{
		repo:      repo,
		uploadDir: uploadDir,
	}
}

// UploadDocumentRequest represents a multipart document upload
type UploadDocumentRequest struct {
	Type  string
	Label string
	File  *multipart.FileHeader
}

// ListDocuments retrieves all document metadata
func (s *DocumentService) ListDocuments() ([]models.Document, error) {
	documents, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

// UploadDocument validates and stores an uploaded PDF, then persists its
// metadata. Files land in the uploads directory under a timestamp-prefixed
// name so repeated uploads of the same file never collide.
func (s *DocumentService) UploadDocument(req *UploadDocumentRequest) (*models.Document, error) {
	docType := models.DocumentType(strings.TrimSpace(req.Type))
	if !models.ValidDocumentType(docType) {
		return nil, apperrors.NewValidationError("type",
			"invalid type, must be one of: lease, maintenance, inspection, vacate, other")
	}

	label := strings.TrimSpace(req.Label)
	if label == "" || req.File == nil {
		return nil, apperrors.NewValidationError("", "missing type, label, or file")
	}

	src, err := req.File.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// Sniff content, never trust the client's extension or Content-Type
	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return nil, apperrors.NewValidationError("file",
			fmt.Sprintf("only PDF uploads are accepted, got %s", mt.String()))
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(req.File.Filename))
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	document := &models.Document{
		Type:     docType,
		Label:    label,
		Filename: filename,
	}
	if err := s.repo.Create(document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return document, nil
}
