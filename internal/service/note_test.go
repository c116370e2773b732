package service_test

import (
	"testing"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NoteServiceTestSuite defines the test suite for NoteService
type NoteServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockNoteRepo   *mocks.MockNoteRepositoryInterface
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	noteService    *service.NoteService
}

// SetupTest sets up the test suite
func (suite *NoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNoteRepo = mocks.NewMockNoteRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)

	suite.noteService = service.NewNoteService(suite.mockNoteRepo, suite.mockTenantRepo)
}

// TearDownTest cleans up after each test
func (suite *NoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateNote tests creating a note for a tenant
func (suite *NoteServiceTestSuite) TestCreateNote() {
	tenantID := uuid.New()
	req := &service.CreateNoteRequest{
		Text: "Requested a parking spot change.",
		Tags: []string{"parking", "  ", "follow-up"},
	}

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(&models.Tenant{BaseModel: models.BaseModel{ID: tenantID}}, nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	note, err := suite.noteService.CreateNote(tenantID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), note)
	assert.Equal(suite.T(), tenantID, note.TenantID)
	// Blank tags are dropped
	assert.Equal(suite.T(), models.StringList{"parking", "follow-up"}, note.Tags)
}

// TestCreateNoteForArchivedTenant tests that archived tenants still accept notes
func (suite *NoteServiceTestSuite) TestCreateNoteForArchivedTenant() {
	tenantID := uuid.New()
	req := &service.CreateNoteRequest{Text: "Deposit returned in full."}

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(&models.Tenant{
			BaseModel:  models.BaseModel{ID: tenantID},
			IsArchived: true,
		}, nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	note, err := suite.noteService.CreateNote(tenantID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), note)
}

// TestCreateNoteMissingText tests that blank text is rejected
func (suite *NoteServiceTestSuite) TestCreateNoteMissingText() {
	note, err := suite.noteService.CreateNote(uuid.New(), &service.CreateNoteRequest{Text: "   "})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), note)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateNoteTenantNotFound tests attaching a note to a missing tenant
func (suite *NoteServiceTestSuite) TestCreateNoteTenantNotFound() {
	tenantID := uuid.New()

	suite.mockTenantRepo.EXPECT().
		GetByID(tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	note, err := suite.noteService.CreateNote(tenantID, &service.CreateNoteRequest{Text: "hello"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), note)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantNotFound)
}

// TestListNotesByTenant tests listing a tenant's notes
func (suite *NoteServiceTestSuite) TestListNotesByTenant() {
	tenantID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByTenantID(tenantID).
		Return([]models.Note{
			{Text: "newest"},
			{Text: "oldest"},
		}, nil).
		Times(1)

	notes, err := suite.noteService.ListNotesByTenant(tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), notes, 2)
}

// TestDeleteNote tests deleting a note
func (suite *NoteServiceTestSuite) TestDeleteNote() {
	noteID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByID(noteID).
		Return(&models.Note{BaseModel: models.BaseModel{ID: noteID}}, nil).
		Times(1)

	suite.mockNoteRepo.EXPECT().
		Delete(noteID).
		Return(nil).
		Times(1)

	err := suite.noteService.DeleteNote(noteID)

	assert.NoError(suite.T(), err)
}

// TestDeleteNoteNotFound tests deleting a missing note
func (suite *NoteServiceTestSuite) TestDeleteNoteNotFound() {
	noteID := uuid.New()

	suite.mockNoteRepo.EXPECT().
		GetByID(noteID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.noteService.DeleteNote(noteID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestNoteServiceTestSuite runs the test suite
func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
