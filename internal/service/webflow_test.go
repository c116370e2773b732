package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"property-portal-backend/internal/config"
	apperrors "property-portal-backend/internal/errors"
	"property-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// WebflowServiceTestSuite defines the test suite for WebflowService
type WebflowServiceTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []recordedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// SetupTest sets up a fake Webflow API server
func (suite *WebflowServiceTestSuite) SetupTest() {
	suite.requests = nil
	suite.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		suite.requests = append(suite.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   body,
		})
		suite.respond(w, r)
	}))
}

// TearDownTest shuts the fake server down
func (suite *WebflowServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *WebflowServiceTestSuite) newService() *service.WebflowService {
	cfg := &config.Config{
		WebflowToken:        "test-token",
		WebflowCollectionID: "coll123",
		WebflowAPIBase:      suite.server.URL,
	}
	return service.NewWebflowService(cfg, service.DefaultWebflowFieldMap())
}

// TestListProperties tests listing and field-slug mapping of CMS items
func (suite *WebflowServiceTestSuite) TestListProperties() {
	suite.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "item1",
					"isDraft": false,
					"isArchived": false,
					"lastUpdated": "2026-08-01T10:00:00Z",
					"fieldData": {"name": "Sunset Villas", "suite": "Suite 210", "photo-url": "https://p/1.jpg"}
				},
				{
					"id": "item2",
					"isDraft": true,
					"fieldData": {"name": "Harbor Point"}
				}
			]
		}`))
	}

	properties, err := suite.newService().ListProperties()

	require.NoError(suite.T(), err)
	require.Len(suite.T(), properties, 2)

	assert.Equal(suite.T(), "item1", properties[0].WebflowID)
	assert.Equal(suite.T(), "Sunset Villas", properties[0].Name)
	assert.Equal(suite.T(), "Suite 210", properties[0].Suite)
	assert.Equal(suite.T(), "https://p/1.jpg", properties[0].PhotoURL)
	assert.True(suite.T(), properties[1].IsDraft)

	require.Len(suite.T(), suite.requests, 1)
	assert.Equal(suite.T(), "GET", suite.requests[0].Method)
	assert.Equal(suite.T(), "/collections/coll123/items", suite.requests[0].Path)
}

// TestListPropertiesNotConfigured tests the fail-fast when credentials are absent
func (suite *WebflowServiceTestSuite) TestListPropertiesNotConfigured() {
	svc := service.NewWebflowService(&config.Config{}, service.DefaultWebflowFieldMap())

	properties, err := svc.ListProperties()

	assert.Nil(suite.T(), properties)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWebflowNotConfigured)
	assert.Empty(suite.T(), suite.requests)
}

// TestCreateProperty tests creating a CMS item with mapped field slugs
func (suite *WebflowServiceTestSuite) TestCreateProperty() {
	suite.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "new-item", "fieldData": {"name": "Maple Court"}}`))
	}

	property, err := suite.newService().CreateProperty(&service.CreateWebflowPropertyRequest{
		Name:  "  Maple Court  ",
		Suite: "Suite 4",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new-item", property.WebflowID)
	assert.Equal(suite.T(), "Maple Court", property.Name)

	require.Len(suite.T(), suite.requests, 1)
	assert.Equal(suite.T(), "POST", suite.requests[0].Method)
	fieldData := suite.requests[0].Body["fieldData"].(map[string]interface{})
	assert.Equal(suite.T(), "Maple Court", fieldData["name"])
	assert.Equal(suite.T(), "Suite 4", fieldData["suite"])
}

// TestCreatePropertyMissingName tests validation before any API call
func (suite *WebflowServiceTestSuite) TestCreatePropertyMissingName() {
	property, err := suite.newService().CreateProperty(&service.CreateWebflowPropertyRequest{Name: "  "})

	assert.Nil(suite.T(), property)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Empty(suite.T(), suite.requests)
}

// TestDeleteProperty tests removing a CMS item
func (suite *WebflowServiceTestSuite) TestDeleteProperty() {
	err := suite.newService().DeleteProperty("item1")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), suite.requests, 1)
	assert.Equal(suite.T(), "DELETE", suite.requests[0].Method)
	assert.Equal(suite.T(), "/collections/coll123/items/item1", suite.requests[0].Path)
}

// TestAPIErrorSurfacesMessage tests that a failed call carries the API message
func (suite *WebflowServiceTestSuite) TestAPIErrorSurfacesMessage() {
	suite.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"msg": "Validation failure"}`))
	}

	err := suite.newService().DeleteProperty("item1")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "409")
	assert.Contains(suite.T(), err.Error(), "Validation failure")
}

// TestBulkUpdateFromCSV tests patching items from a CSV, row failures included
func (suite *WebflowServiceTestSuite) TestBulkUpdateFromCSV() {
	suite.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/bad-item") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"msg": "Item not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}

	csvData := strings.Join([]string{
		"item_id,name,suite",
		"item1,Sunset Villas Renamed,",
		"bad-item,Ghost,",
		",Missing Id,",
	}, "\n")

	report, err := suite.newService().BulkUpdateFromCSV(strings.NewReader(csvData))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, report.Total)
	assert.Equal(suite.T(), 1, report.Updated)
	require.Len(suite.T(), report.Failed, 2)
	assert.Equal(suite.T(), "bad-item", report.Failed[0].ItemID)
	assert.Equal(suite.T(), "missing item_id", report.Failed[1].Error)

	// Only the two rows with ids reached the API; empty suite cells are not sent
	require.Len(suite.T(), suite.requests, 2)
	assert.Equal(suite.T(), "PATCH", suite.requests[0].Method)
	fieldData := suite.requests[0].Body["fieldData"].(map[string]interface{})
	assert.Equal(suite.T(), "Sunset Villas Renamed", fieldData["name"])
	_, hasSuite := fieldData["suite"]
	assert.False(suite.T(), hasSuite)
}

// TestBulkUpdateMissingIDColumn tests rejection of a CSV without item_id
func (suite *WebflowServiceTestSuite) TestBulkUpdateMissingIDColumn() {
	report, err := suite.newService().BulkUpdateFromCSV(strings.NewReader("name,suite\nA,B\n"))

	assert.Nil(suite.T(), report)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Empty(suite.T(), suite.requests)
}

// TestLoadWebflowFieldMap tests reading slug overrides from yaml
func (suite *WebflowServiceTestSuite) TestLoadWebflowFieldMap() {
	path := filepath.Join(suite.T().TempDir(), "webflow.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("name: property-name\nsuite: unit-suite\n"), 0o644))

	fields, err := service.LoadWebflowFieldMap(path)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "property-name", fields.Name)
	assert.Equal(suite.T(), "unit-suite", fields.Suite)
	// Unset keys keep their defaults
	assert.Equal(suite.T(), "photo-url", fields.PhotoURL)
}

// TestLoadWebflowFieldMapMissingFile tests the fallback to defaults
func (suite *WebflowServiceTestSuite) TestLoadWebflowFieldMapMissingFile() {
	fields, err := service.LoadWebflowFieldMap(filepath.Join(suite.T().TempDir(), "absent.yaml"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.DefaultWebflowFieldMap(), fields)
}

// TestWebflowServiceTestSuite runs the test suite
func TestWebflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WebflowServiceTestSuite))
}
