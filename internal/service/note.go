package service

import (
	"errors"
	"fmt"
	"strings"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService handles business logic for tenant notes
type NoteService struct {
	repo       repository.NoteRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
}

// NewNoteService creates a new note service
func NewNoteService(repo repository.NoteRepositoryInterface, tenantRepo repository.TenantRepositoryInterface) *NoteService {
	return &NoteService{
		repo:       repo,
		tenantRepo: tenantRepo,
	}
}

// CreateNoteRequest represents the data needed to create a note
type CreateNoteRequest struct {
	Text       string     `json:"text"`
	PropertyID *uuid.UUID `json:"propertyId"`
	Tags       []string   `json:"tags"`
}

// CreateNote attaches a note to a tenant. Archived tenants accept notes
// just like active ones.
func (s *NoteService) CreateNote(tenantID uuid.UUID, req *CreateNoteRequest) (*models.Note, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "note text is required")
	}

	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	tags := models.StringList{}
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	note := &models.Note{
		TenantID:   tenantID,
		PropertyID: req.PropertyID,
		Text:       text,
		Tags:       tags,
	}
	if err := s.repo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// ListNotesByTenant retrieves a tenant's notes newest first, whether the
// tenant is active or archived
func (s *NoteService) ListNotesByTenant(tenantID uuid.UUID) ([]models.Note, error) {
	notes, err := s.repo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// DeleteNote deletes a note by id
func (s *NoteService) DeleteNote(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
