package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"property-portal-backend/internal/config"
	apperrors "property-portal-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// WebflowFieldMap maps portal property fields to the slugs of the Webflow
// Properties collection. Slugs differ per site, so they live in a config
// file rather than code.
type WebflowFieldMap struct {
	Name     string `yaml:"name"`
	Suite    string `yaml:"suite"`
	PhotoURL string `yaml:"photo_url"`
}

// DefaultWebflowFieldMap matches the slugs of the production site
func DefaultWebflowFieldMap() WebflowFieldMap {
	return WebflowFieldMap{
		Name:     "name",
		Suite:    "suite",
		PhotoURL: "photo-url",
	}
}

// LoadWebflowFieldMap reads the field map from a yaml file, falling back to
// the defaults when the file is absent
func LoadWebflowFieldMap(path string) (WebflowFieldMap, error) {
	fields := DefaultWebflowFieldMap()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fields, nil
		}
		return fields, fmt.Errorf("error reading webflow field map: %w", err)
	}
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return fields, fmt.Errorf("error unmarshaling webflow field map: %w", err)
	}
	return fields, nil
}

// WebflowService mirrors property records into the Webflow CMS, which is
// the system of record for public-facing property data
type WebflowService struct {
	cfg        *config.Config
	fields     WebflowFieldMap
	httpClient *http.Client
}

// NewWebflowService creates a new Webflow service
func NewWebflowService(cfg *config.Config, fields WebflowFieldMap) *WebflowService {
	return &WebflowService{
		cfg:        cfg,
		fields:     fields,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WebflowProperty is the portal-facing shape of one mirrored CMS item
type WebflowProperty struct {
	WebflowID     string `json:"webflowId"`
	Name          string `json:"name"`
	Suite         string `json:"suite"`
	PhotoURL      string `json:"photoUrl"`
	IsDraft       bool   `json:"isDraft"`
	IsArchived    bool   `json:"isArchived"`
	LastPublished string `json:"lastPublished,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// CreateWebflowPropertyRequest represents the data for a new CMS property
type CreateWebflowPropertyRequest struct {
	Name     string `json:"name"`
	Suite    string `json:"suite"`
	PhotoURL string `json:"photoUrl"`
}

// webflowItem is one collection item as the Webflow v2 API returns it
type webflowItem struct {
	ID            string                 `json:"id"`
	IsDraft       bool                   `json:"isDraft"`
	IsArchived    bool                   `json:"isArchived"`
	LastPublished string                 `json:"lastPublished"`
	LastUpdated   string                 `json:"lastUpdated"`
	FieldData     map[string]interface{} `json:"fieldData"`
}

type webflowItemList struct {
	Items []webflowItem `json:"items"`
}

// webflowAPIError carries the status and message of a failed API call
type webflowAPIError struct {
	Status  int
	Message string
}

func (e *webflowAPIError) Error() string {
	return fmt.Sprintf("webflow API error %d: %s", e.Status, e.Message)
}

func (s *WebflowService) assertConfig() error {
	if s.cfg.WebflowToken == "" || s.cfg.WebflowCollectionID == "" {
		return apperrors.ErrWebflowNotConfigured
	}
	return nil
}

// request performs one Webflow v2 API call and decodes the JSON response
// into out when out is non-nil
func (s *WebflowService) request(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode webflow request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.cfg.WebflowAPIBase+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create webflow request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.WebflowToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Version", "2.0.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webflow request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read webflow response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		var apiErr struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &apiErr); err == nil {
			if apiErr.Msg != "" {
				msg = apiErr.Msg
			} else if apiErr.Message != "" {
				msg = apiErr.Message
			}
		}
		return &webflowAPIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode webflow response: %w", err)
		}
	}
	return nil
}

func (s *WebflowService) toProperty(item *webflowItem) WebflowProperty {
	str := func(slug string) string {
		if v, ok := item.FieldData[slug].(string); ok {
			return v
		}
		return ""
	}
	return WebflowProperty{
		WebflowID:     item.ID,
		Name:          str(s.fields.Name),
		Suite:         str(s.fields.Suite),
		PhotoURL:      str(s.fields.PhotoURL),
		IsDraft:       item.IsDraft,
		IsArchived:    item.IsArchived,
		LastPublished: item.LastPublished,
		LastUpdated:   item.LastUpdated,
	}
}

// ListProperties fetches all mirrored properties from the CMS collection
func (s *WebflowService) ListProperties() ([]WebflowProperty, error) {
	if err := s.assertConfig(); err != nil {
		return nil, err
	}

	var list webflowItemList
	path := fmt.Sprintf("/collections/%s/items", s.cfg.WebflowCollectionID)
	if err := s.request(http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	properties := make([]WebflowProperty, 0, len(list.Items))
	for i := range list.Items {
		properties = append(properties, s.toProperty(&list.Items[i]))
	}
	return properties, nil
}

// CreateProperty creates a mirrored property item in the CMS collection
func (s *WebflowService) CreateProperty(req *CreateWebflowPropertyRequest) (*WebflowProperty, error) {
	if err := s.assertConfig(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "property name is required")
	}

	payload := map[string]interface{}{
		"isDraft": false,
		"fieldData": map[string]interface{}{
			s.fields.Name:     name,
			s.fields.Suite:    strings.TrimSpace(req.Suite),
			s.fields.PhotoURL: strings.TrimSpace(req.PhotoURL),
		},
	}

	var item webflowItem
	path := fmt.Sprintf("/collections/%s/items", s.cfg.WebflowCollectionID)
	if err := s.request(http.MethodPost, path, payload, &item); err != nil {
		return nil, err
	}

	property := s.toProperty(&item)
	return &property, nil
}

// DeleteProperty removes a mirrored property item from the CMS collection
func (s *WebflowService) DeleteProperty(itemID string) error {
	if err := s.assertConfig(); err != nil {
		return err
	}
	path := fmt.Sprintf("/collections/%s/items/%s", s.cfg.WebflowCollectionID, itemID)
	return s.request(http.MethodDelete, path, nil, nil)
}
