package service_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// minimal but structurally valid PDF payload for content sniffing
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDocRepo     *mocks.MockDocumentRepositoryInterface
	documentService *service.DocumentService
	uploadDir       string
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.uploadDir = suite.T().TempDir()

	suite.documentService = service.NewDocumentService(suite.mockDocRepo, suite.uploadDir)
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// fileHeader builds a *multipart.FileHeader the way Gin would hand it to the service
func (suite *DocumentServiceTestSuite) fileHeader(filename string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(suite.T(), err)
	_, err = part.Write(content)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(suite.T(), err)
	return header
}

// TestUploadDocument tests a valid PDF upload
func (suite *DocumentServiceTestSuite) TestUploadDocument() {
	req := &service.UploadDocumentRequest{
		Type:  "lease",
		Label: "Lease Agreement 2026",
		File:  suite.fileHeader("lease.pdf", pdfBytes),
	}

	suite.mockDocRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	document, err := suite.documentService.UploadDocument(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), document)
	assert.Equal(suite.T(), models.DocumentTypeLease, document.Type)
	assert.Equal(suite.T(), "Lease Agreement 2026", document.Label)
	assert.Contains(suite.T(), document.Filename, "lease.pdf")

	// The file landed in the upload directory under the stored name
	_, statErr := os.Stat(filepath.Join(suite.uploadDir, document.Filename))
	assert.NoError(suite.T(), statErr)
}

// TestUploadDocumentRejectsNonPDF tests that content sniffing rejects a text
// file regardless of its .pdf extension
func (suite *DocumentServiceTestSuite) TestUploadDocumentRejectsNonPDF() {
	req := &service.UploadDocumentRequest{
		Type:  "lease",
		Label: "Not Really A PDF",
		File:  suite.fileHeader("fake.pdf", []byte("just some plain text")),
	}

	document, err := suite.documentService.UploadDocument(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), document)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUploadDocumentInvalidType tests rejection of an unknown document type
func (suite *DocumentServiceTestSuite) TestUploadDocumentInvalidType() {
	req := &service.UploadDocumentRequest{
		Type:  "warranty",
		Label: "Warranty Papers",
		File:  suite.fileHeader("warranty.pdf", pdfBytes),
	}

	document, err := suite.documentService.UploadDocument(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), document)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUploadDocumentMissingLabel tests rejection when the label is blank
func (suite *DocumentServiceTestSuite) TestUploadDocumentMissingLabel() {
	req := &service.UploadDocumentRequest{
		Type:  "other",
		Label: "   ",
		File:  suite.fileHeader("doc.pdf", pdfBytes),
	}

	document, err := suite.documentService.UploadDocument(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), document)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUploadDocumentMissingFile tests rejection when no file is attached
func (suite *DocumentServiceTestSuite) TestUploadDocumentMissingFile() {
	req := &service.UploadDocumentRequest{
		Type:  "other",
		Label: "No File",
		File:  nil,
	}

	document, err := suite.documentService.UploadDocument(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), document)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestListDocuments tests listing document metadata
func (suite *DocumentServiceTestSuite) TestListDocuments() {
	suite.mockDocRepo.EXPECT().
		GetAll().
		Return([]models.Document{
			{Type: models.DocumentTypeLease, Label: "Lease"},
			{Type: models.DocumentTypeInspection, Label: "Inspection"},
		}, nil).
		Times(1)

	documents, err := suite.documentService.ListDocuments()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), documents, 2)
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
