package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "property-portal-backend/internal/errors"
)

// itemIDColumn is the required CSV column naming the collection item to update
const itemIDColumn = "item_id"

// BulkUpdateRowError records one CSV row that could not be applied
type BulkUpdateRowError struct {
	Row    int    `json:"row"`
	ItemID string `json:"itemId,omitempty"`
	Error  string `json:"error"`
}

// BulkUpdateReport summarizes one CSV bulk-update run
type BulkUpdateReport struct {
	Total   int                  `json:"total"`
	Updated int                  `json:"updated"`
	Failed  []BulkUpdateRowError `json:"failed"`
}

// BulkUpdateFromCSV applies a CSV of field updates to the CMS collection.
//
// The header row must contain an item_id column; every other column is
// treated as a Webflow field slug and its cell value PATCHed onto the item.
// Empty cells leave the field untouched. Row failures are collected in the
// report and never abort the run, mirroring how the tenant repair scan
// treats per-record failures.
func (s *WebflowService) BulkUpdateFromCSV(r io.Reader) (*BulkUpdateReport, error) {
	if err := s.assertConfig(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewValidationError("file", "empty or unreadable CSV")
	}

	idCol := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), itemIDColumn) {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		return nil, apperrors.NewValidationError("file", "CSV header must contain an item_id column")
	}

	report := &BulkUpdateReport{Failed: []BulkUpdateRowError{}}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Total++
			report.Failed = append(report.Failed, BulkUpdateRowError{
				Row:   row,
				Error: fmt.Sprintf("malformed row: %v", err),
			})
			continue
		}
		report.Total++

		itemID := strings.TrimSpace(record[idCol])
		if itemID == "" {
			report.Failed = append(report.Failed, BulkUpdateRowError{
				Row:   row,
				Error: "missing item_id",
			})
			continue
		}

		fieldData := map[string]interface{}{}
		for i, cell := range record {
			if i == idCol || i >= len(header) {
				continue
			}
			slug := strings.TrimSpace(header[i])
			value := strings.TrimSpace(cell)
			if slug == "" || value == "" {
				continue
			}
			fieldData[slug] = value
		}
		if len(fieldData) == 0 {
			report.Failed = append(report.Failed, BulkUpdateRowError{
				Row:    row,
				ItemID: itemID,
				Error:  "no field values to apply",
			})
			continue
		}

		path := fmt.Sprintf("/collections/%s/items/%s", s.cfg.WebflowCollectionID, itemID)
		payload := map[string]interface{}{"fieldData": fieldData}
		if err := s.request(http.MethodPatch, path, payload, nil); err != nil {
			report.Failed = append(report.Failed, BulkUpdateRowError{
				Row:    row,
				ItemID: itemID,
				Error:  err.Error(),
			})
			continue
		}
		report.Updated++
	}

	return report, nil
}
