package service

import (
	"fmt"
	"strings"

	"property-portal-backend/internal/database/models"
	"property-portal-backend/internal/logger"
	"property-portal-backend/internal/repository"
)

// RepairService heals tenant property references. Rows migrated from the
// legacy system can hold a property *name* where an id belongs, or an id of
// a property that was since deleted; this service classifies every tenant's
// reference and rewrites the ones it can resolve.
type RepairService struct {
	tenantRepo   repository.TenantRepositoryInterface
	propertyRepo repository.PropertyRepositoryInterface
	log          *logger.Logger
}

// NewRepairService creates a new repair service
func NewRepairService(tenantRepo repository.TenantRepositoryInterface, propertyRepo repository.PropertyRepositoryInterface) *RepairService {
	return &RepairService{
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		log:          logger.New().WithField("component", "repair"),
	}
}

// refKind is the classification of one tenant's stored property reference.
// Exactly one kind applies per tenant, decided in declaration order.
type refKind int

const (
	refEmpty      refKind = iota // blank reference, nothing to do
	refResolved                  // already a valid property id
	refLegacyName                // matches a property name; rewrite to its id
	refOrphan                    // matches nothing; needs manual intervention
)

// propertyIndex holds the lookup structures built once per repair run
type propertyIndex struct {
	byID     map[string]*models.Property
	idByName map[string]string
}

// RepairUpdate records one healed tenant reference
type RepairUpdate struct {
	TenantID     string `json:"tenantId"`
	TenantEmail  string `json:"tenantEmail"`
	From         string `json:"from"`
	To           string `json:"to"`
	PropertyName string `json:"propertyName"`
}

// RepairUnresolved records one reference that matched nothing
type RepairUnresolved struct {
	TenantID    string `json:"tenantId"`
	TenantEmail string `json:"tenantEmail"`
	PropertyID  string `json:"propertyId"`
}

// RepairSkipped records one tenant that needed no change
type RepairSkipped struct {
	TenantID string `json:"tenantId"`
	Reason   string `json:"reason"`
}

// RepairCounts aggregates the outcome totals of a repair run
type RepairCounts struct {
	TotalTenants int `json:"totalTenants"`
	Updated      int `json:"updated"`
	Skipped      int `json:"skipped"`
	Unresolved   int `json:"unresolved"`
}

// RepairReport is the full result of one repair run
type RepairReport struct {
	Counts     RepairCounts       `json:"counts"`
	Updated    []RepairUpdate     `json:"updated"`
	Unresolved []RepairUnresolved `json:"unresolved"`
	Skipped    []RepairSkipped    `json:"skipped"`
}

// normalizePropertyName folds a property name for matching: trimmed and
// case-folded, so "Sunset Villas", " sunset villas " and "SUNSET VILLAS"
// are all the same key.
func normalizePropertyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// buildPropertyIndex loads the current property set into the two lookup maps
func (s *RepairService) buildPropertyIndex() (*propertyIndex, error) {
	properties, err := s.propertyRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	idx := &propertyIndex{
		byID:     make(map[string]*models.Property, len(properties)),
		idByName: make(map[string]string, len(properties)),
	}
	for i := range properties {
		p := &properties[i]
		idx.byID[p.ID.String()] = p
		idx.idByName[normalizePropertyName(p.Name)] = p.ID.String()
	}
	return idx, nil
}

// classify decides what a raw (already trimmed) reference is
func (idx *propertyIndex) classify(raw string) refKind {
	if raw == "" {
		return refEmpty
	}
	if _, ok := idx.byID[raw]; ok {
		return refResolved
	}
	if mappedID, ok := idx.idByName[normalizePropertyName(raw)]; ok {
		if _, exists := idx.byID[mappedID]; exists {
			return refLegacyName
		}
	}
	return refOrphan
}

// RepairTenantPropertyIDs runs the full reconciliation scan.
//
// Every tenant is visited, archived ones included; an archived tenant can
// be inspected later and its notes still link through the reference. Each
// rewrite commits independently: a persistence failure on one tenant is
// reported under unresolved and the scan moves on. The run is idempotent;
// a healed tenant classifies as "already valid" next time.
func (s *RepairService) RepairTenantPropertyIDs() (*RepairReport, error) {
	idx, err := s.buildPropertyIndex()
	if err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.GetAll(true)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}

	report := &RepairReport{
		Updated:    []RepairUpdate{},
		Unresolved: []RepairUnresolved{},
		Skipped:    []RepairSkipped{},
	}

	for i := range tenants {
		t := &tenants[i]
		raw := strings.TrimSpace(t.PropertyID)

		switch idx.classify(raw) {
		case refEmpty:
			report.Skipped = append(report.Skipped, RepairSkipped{
				TenantID: t.ID.String(),
				Reason:   "empty propertyId",
			})

		case refResolved:
			report.Skipped = append(report.Skipped, RepairSkipped{
				TenantID: t.ID.String(),
				Reason:   "already valid propertyId",
			})

		case refLegacyName:
			mappedID := idx.idByName[normalizePropertyName(raw)]
			if err := s.tenantRepo.UpdatePropertyID(t.ID, mappedID); err != nil {
				s.log.WithError(err).WithField("tenantId", t.ID).
					Warn("failed to persist repaired property reference")
				report.Unresolved = append(report.Unresolved, RepairUnresolved{
					TenantID:    t.ID.String(),
					TenantEmail: t.Email,
					PropertyID:  raw,
				})
				continue
			}
			report.Updated = append(report.Updated, RepairUpdate{
				TenantID:     t.ID.String(),
				TenantEmail:  t.Email,
				From:         raw,
				To:           mappedID,
				PropertyName: idx.byID[mappedID].Name,
			})

		case refOrphan:
			report.Unresolved = append(report.Unresolved, RepairUnresolved{
				TenantID:    t.ID.String(),
				TenantEmail: t.Email,
				PropertyID:  raw,
			})
		}
	}

	report.Counts = RepairCounts{
		TotalTenants: len(tenants),
		Updated:      len(report.Updated),
		Skipped:      len(report.Skipped),
		Unresolved:   len(report.Unresolved),
	}

	s.log.WithFields(map[string]interface{}{
		"totalTenants": report.Counts.TotalTenants,
		"updated":      report.Counts.Updated,
		"skipped":      report.Counts.Skipped,
		"unresolved":   report.Counts.Unresolved,
	}).Info("tenant property reference repair complete")

	return report, nil
}
