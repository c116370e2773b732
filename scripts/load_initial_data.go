package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"property-portal-backend/internal/config"
	"property-portal-backend/internal/database"
	"property-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PropertyData struct {
	Name     string `yaml:"name"`
	Suite    string `yaml:"suite,omitempty"`
	PhotoURL string `yaml:"photo_url,omitempty"`
}

type TenantData struct {
	Name string `yaml:"name"`
	Email string `yaml:"email"`
	Unit string `yaml:"unit,omitempty"`
	// Either a property name (resolved to an id at load time) or a raw value
	// kept verbatim, which is how legacy rows for the repair job are seeded.
	Property    string `yaml:"property,omitempty"`
	RawProperty string `yaml:"raw_property,omitempty"`
	Archived    bool   `yaml:"archived,omitempty"`
	Reason      string `yaml:"reason,omitempty"`
}

type NoteData struct {
	TenantEmail string   `yaml:"tenant_email"`
	Text        string   `yaml:"text"`
	Tags        []string `yaml:"tags,omitempty"`
}

// File structures
type PropertiesFile struct {
	Properties []PropertyData `yaml:"properties"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type NotesFile struct {
	Notes []NoteData `yaml:"notes"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	properties, err := loadProperties(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	notes, err := loadNotes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	// Create properties first so tenants can reference them by id
	propertyMap := make(map[string]*models.Property)
	propertyCreated := 0
	for _, propertyData := range properties {
		property, created, err := createProperty(db, propertyData)
		if err != nil {
			return fmt.Errorf("failed to create property %s: %w", propertyData.Name, err)
		}
		propertyMap[propertyData.Name] = property
		if created {
			propertyCreated++
		}
	}
	log.Printf("Properties: %d created, %d total", propertyCreated, len(properties))

	// Create tenants
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData, propertyMap)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Email, err)
		}
		tenantMap[strings.ToLower(tenantData.Email)] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create notes
	noteCreated := 0
	for _, noteData := range notes {
		created, err := createNote(db, noteData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create note for %s: %w", noteData.TenantEmail, err)
		}
		if created {
			noteCreated++
		}
	}
	log.Printf("Notes: %d created, %d total", noteCreated, len(notes))

	return nil
}

func loadProperties(dataDir string) ([]PropertyData, error) {
	var allProperties []PropertyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "properties") {
			var file PropertiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProperties = append(allProperties, file.Properties...)
		}
		return nil
	})

	return allProperties, err
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadNotes(dataDir string) ([]NoteData, error) {
	var allNotes []NoteData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "notes") {
			var file NotesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allNotes = append(allNotes, file.Notes...)
		}
		return nil
	})

	return allNotes, err
}

func createProperty(db *gorm.DB, propertyData PropertyData) (*models.Property, bool, error) {
	var property models.Property
	if err := db.Where("name = ?", propertyData.Name).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			property = models.Property{
				Name:     propertyData.Name,
				Suite:    propertyData.Suite,
				PhotoURL: propertyData.PhotoURL,
			}

			if err := db.Create(&property).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create property: %w", err)
			}
			return &property, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query property: %w", err)
		}
	}

	return &property, false, nil // created = false (existing)
}

func createTenant(db *gorm.DB, tenantData TenantData, propertyMap map[string]*models.Property) (*models.Tenant, bool, error) {
	email := strings.ToLower(strings.TrimSpace(tenantData.Email))

	var tenant models.Tenant
	if err := db.Where("LOWER(email) = ?", email).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			propertyID := tenantData.RawProperty
			if tenantData.Property != "" {
				property := propertyMap[tenantData.Property]
				if property == nil {
					return nil, false, fmt.Errorf("property %s not found for tenant %s", tenantData.Property, tenantData.Email)
				}
				propertyID = property.ID.String()
			}

			tenant = models.Tenant{
				Name:       tenantData.Name,
				Email:      email,
				Unit:       tenantData.Unit,
				PropertyID: propertyID,
			}
			if tenantData.Archived {
				now := time.Now()
				reason := tenantData.Reason
				if reason == "" {
					reason = "Archived"
				}
				tenant.IsArchived = true
				tenant.ArchivedAt = &now
				tenant.ArchivedReason = reason
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createNote(db *gorm.DB, noteData NoteData, tenantMap map[string]*models.Tenant) (bool, error) {
	tenant := tenantMap[strings.ToLower(noteData.TenantEmail)]
	if tenant == nil {
		return false, fmt.Errorf("tenant %s not found", noteData.TenantEmail)
	}

	var existing models.Note
	if err := db.Where("tenant_id = ? AND text = ?", tenant.ID, noteData.Text).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			note := models.Note{
				TenantID: tenant.ID,
				Text:     noteData.Text,
				Tags:     models.StringList(noteData.Tags),
			}
			if err := db.Create(&note).Error; err != nil {
				return false, fmt.Errorf("failed to create note: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query note: %w", err)
	}

	return false, nil
}
