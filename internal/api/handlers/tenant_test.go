package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"property-portal-backend/internal/api/handlers"
	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/mocks"
	"property-portal-backend/internal/service"
	"property-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTenantService *mocks.MockTenantServiceInterface
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantService = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewTenantHandler(suite.mockTenantService)
	suite.httpSuite.Router.GET("/tenants", handler.ListTenants)
	suite.httpSuite.Router.POST("/tenants", handler.CreateTenant)
	suite.httpSuite.Router.DELETE("/tenants/:id", handler.ArchiveTenant)
}

// TearDownTest cleans up after each test
func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTenants tests GET /tenants
func (suite *TenantHandlerTestSuite) TestListTenants() {
	suite.mockTenantService.EXPECT().
		ListTenants(false).
		Return([]models.Tenant{
			{Name: "Ava Thompson"},
			{Name: "Noah Patel"},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/tenants", nil)

	var tenants []models.Tenant
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tenants)
	assert.Len(suite.T(), tenants, 2)
}

// TestListTenantsIncludeArchived tests the includeArchived query flag
func (suite *TenantHandlerTestSuite) TestListTenantsIncludeArchived() {
	suite.mockTenantService.EXPECT().
		ListTenants(true).
		Return([]models.Tenant{{Name: "Emma Kowalski", IsArchived: true}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/tenants?includeArchived=true", nil)

	var tenants []models.Tenant
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tenants)
	assert.Len(suite.T(), tenants, 1)
}

// TestCreateTenant tests POST /tenants
func (suite *TenantHandlerTestSuite) TestCreateTenant() {
	body := handlers.CreateTenantBody{
		Name:       "Ava Thompson",
		Email:      "ava.thompson@example.com",
		Unit:       "2A",
		PropertyID: uuid.New().String(),
	}

	suite.mockTenantService.EXPECT().
		CreateTenant(gomock.Any()).
		DoAndReturn(func(req *service.CreateTenantRequest) (*models.Tenant, error) {
			assert.Equal(suite.T(), body.Email, req.Email)
			return &models.Tenant{
				BaseModel: models.BaseModel{ID: uuid.New()},
				Name:      req.Name,
				Email:     req.Email,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/tenants", body)

	var tenant models.Tenant
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &tenant)
	assert.Equal(suite.T(), body.Email, tenant.Email)
}

// TestCreateTenantDuplicateEmail tests the 409 DUPLICATE_EMAIL conflict body
func (suite *TenantHandlerTestSuite) TestCreateTenantDuplicateEmail() {
	existingID := uuid.New()
	body := handlers.CreateTenantBody{
		Name:       "Ava Clone",
		Email:      "ava.thompson@example.com",
		Unit:       "3C",
		PropertyID: uuid.New().String(),
	}

	suite.mockTenantService.EXPECT().
		CreateTenant(gomock.Any()).
		Return(nil, &apperrors.DuplicateEmailError{TenantID: existingID}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/tenants", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusConflict, &response)
	assert.Equal(suite.T(), "DUPLICATE_EMAIL", response["code"])
	assert.Equal(suite.T(), existingID.String(), response["tenantId"])
	assert.Equal(suite.T(), "Tenant email already exists.", response["error"])
}

// TestCreateTenantPreviousTenant tests the 409 PREVIOUS_TENANT conflict body
func (suite *TenantHandlerTestSuite) TestCreateTenantPreviousTenant() {
	existingID := uuid.New()
	archivedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	body := handlers.CreateTenantBody{
		Name:       "Emma Kowalski",
		Email:      "emma.kowalski@example.com",
		Unit:       "5D",
		PropertyID: uuid.New().String(),
	}

	suite.mockTenantService.EXPECT().
		CreateTenant(gomock.Any()).
		Return(nil, &apperrors.PreviousTenantError{
			TenantID:       existingID,
			ArchivedAt:     &archivedAt,
			ArchivedReason: "Lease ended",
			NoteCount:      2,
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/tenants", body)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusConflict, &response)
	assert.Equal(suite.T(), "PREVIOUS_TENANT", response["code"])
	assert.Equal(suite.T(), existingID.String(), response["tenantId"])
	assert.Equal(suite.T(), "Lease ended", response["archivedReason"])
	assert.Equal(suite.T(), float64(2), response["noteCount"])
}

// TestCreateTenantValidationError tests the 400 from missing fields
func (suite *TenantHandlerTestSuite) TestCreateTenantValidationError() {
	suite.mockTenantService.EXPECT().
		CreateTenant(gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "missing required fields")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/tenants", handlers.CreateTenantBody{Name: "Only Name"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "missing required fields")
}

// TestArchiveTenant tests DELETE /tenants/:id with a reason body
func (suite *TenantHandlerTestSuite) TestArchiveTenant() {
	tenantID := uuid.New()
	now := time.Now()

	suite.mockTenantService.EXPECT().
		ArchiveTenant(tenantID, "Moved out").
		Return(&models.Tenant{
			BaseModel:      models.BaseModel{ID: tenantID},
			IsArchived:     true,
			ArchivedAt:     &now,
			ArchivedReason: "Moved out",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/tenants/"+tenantID.String(),
		service.ArchiveTenantRequest{Reason: "Moved out"})

	var tenant models.Tenant
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tenant)
	assert.True(suite.T(), tenant.IsArchived)
	assert.Equal(suite.T(), "Moved out", tenant.ArchivedReason)
}

// TestArchiveTenantNoBody tests DELETE /tenants/:id without a body
func (suite *TenantHandlerTestSuite) TestArchiveTenantNoBody() {
	tenantID := uuid.New()

	suite.mockTenantService.EXPECT().
		ArchiveTenant(tenantID, "").
		Return(&models.Tenant{
			BaseModel:      models.BaseModel{ID: tenantID},
			IsArchived:     true,
			ArchivedReason: "Archived",
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/tenants/"+tenantID.String(), nil)

	var tenant models.Tenant
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tenant)
	assert.Equal(suite.T(), "Archived", tenant.ArchivedReason)
}

// TestArchiveTenantInvalidID tests DELETE /tenants/:id with a malformed id
func (suite *TenantHandlerTestSuite) TestArchiveTenantInvalidID() {
	recorder := suite.httpSuite.MakeRequest("DELETE", "/tenants/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "tenant not found")
}

// TestArchiveTenantNotFound tests DELETE /tenants/:id for a missing tenant
func (suite *TenantHandlerTestSuite) TestArchiveTenantNotFound() {
	tenantID := uuid.New()

	suite.mockTenantService.EXPECT().
		ArchiveTenant(tenantID, "").
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/tenants/"+tenantID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "tenant not found")
}

// TestTenantHandlerTestSuite runs the test suite
func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
