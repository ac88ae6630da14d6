// Package store persists letterhead records in SQLite through gorm. Each row
// is the flattened template plus the palette selection and signature
// reference; clinic hours serialize to a JSON column.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

// ErrNotFound reports a letterhead id with no row behind it.
var ErrNotFound = errors.New("store: letterhead not found")

// Letterhead is the persisted form of a template record.
type Letterhead struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"not null;index"`

	ClinicName        string
	DoctorName        string
	ProfessionalTitle string
	DoctorCredentials string
	Specialty         string

	ClinicAddress string
	ClinicRoom    string
	ClinicCity    string
	ClinicCountry string
	Phone         string
	Mobile        string
	Email         string

	HeaderColor  string
	AccentColor  string
	PaperColor   string
	ShowRxSymbol bool

	LicenseNo   string
	PTRNo       string
	S2LicenseNo string

	// JSON object of day name to hours text.
	ClinicHours string

	Theme        string
	ThemeVariant string
	SignatureRef string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("store: database path required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.AutoMigrate(&Letterhead{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return db, nil
}

// Store wraps database access for letterhead rows.
type Store struct {
	db *gorm.DB
}

// New builds a Store over an opened database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new letterhead from a template record and returns the
// stored row with its generated id.
func (s *Store) Create(ctx context.Context, name string, tpl *reseta.Template) (*Letterhead, error) {
	if tpl == nil {
		return nil, fmt.Errorf("store: template is nil")
	}
	if name == "" {
		name = "Untitled letterhead"
	}

	row := &Letterhead{ID: uuid.NewString(), Name: name}
	if err := row.fromTemplate(tpl); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("store: create letterhead: %w", err)
	}
	return row, nil
}

// Get loads a letterhead by id.
func (s *Store) Get(ctx context.Context, id string) (*Letterhead, error) {
	var row Letterhead
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load letterhead %s: %w", id, err)
	}
	return &row, nil
}

// Save writes the template state back onto an existing row.
func (s *Store) Save(ctx context.Context, id string, tpl *reseta.Template) error {
	if tpl == nil {
		return fmt.Errorf("store: template is nil")
	}

	row, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := row.fromTemplate(tpl); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("store: save letterhead %s: %w", id, err)
	}
	return nil
}

// SetTheme records the active palette selection for a letterhead.
func (s *Store) SetTheme(ctx context.Context, id, name, variant string) error {
	result := s.db.WithContext(ctx).Model(&Letterhead{}).Where("id = ?", id).
		Updates(map[string]any{"theme": name, "theme_variant": variant})
	if result.Error != nil {
		return fmt.Errorf("store: set theme for %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// SetSignature records the signature image reference for a letterhead.
func (s *Store) SetSignature(ctx context.Context, id, ref string) error {
	result := s.db.WithContext(ctx).Model(&Letterhead{}).Where("id = ?", id).
		Update("signature_ref", ref)
	if result.Error != nil {
		return fmt.Errorf("store: set signature for %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// List returns all letterheads, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Letterhead, error) {
	var rows []Letterhead
	if err := s.db.WithContext(ctx).Order("updated_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: list letterheads: %w", err)
	}
	return rows, nil
}

// Delete removes a letterhead row.
func (s *Store) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Letterhead{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("store: delete letterhead %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Template rebuilds the in-memory record from the stored row.
func (l *Letterhead) Template() (*reseta.Template, error) {
	tpl := reseta.New()
	tpl.ClinicName = l.ClinicName
	tpl.DoctorName = l.DoctorName
	tpl.ProfessionalTitle = l.ProfessionalTitle
	tpl.DoctorCredentials = l.DoctorCredentials
	tpl.Specialty = l.Specialty
	tpl.ClinicAddress = l.ClinicAddress
	tpl.ClinicRoom = l.ClinicRoom
	tpl.ClinicCity = l.ClinicCity
	tpl.ClinicCountry = l.ClinicCountry
	tpl.Phone = l.Phone
	tpl.Mobile = l.Mobile
	tpl.Email = l.Email
	tpl.HeaderColor = l.HeaderColor
	tpl.AccentColor = l.AccentColor
	tpl.PaperColor = l.PaperColor
	tpl.ShowRxSymbol = l.ShowRxSymbol
	tpl.LicenseNo = l.LicenseNo
	tpl.PTRNo = l.PTRNo
	tpl.S2LicenseNo = l.S2LicenseNo

	if l.ClinicHours != "" {
		hours := map[string]string{}
		if err := json.Unmarshal([]byte(l.ClinicHours), &hours); err != nil {
			return nil, fmt.Errorf("store: decode clinic hours for %s: %w", l.ID, err)
		}
		for day, value := range hours {
			if err := tpl.SetHours(day, value); err != nil {
				return nil, fmt.Errorf("store: clinic hours for %s: %w", l.ID, err)
			}
		}
	}
	return tpl, nil
}

func (l *Letterhead) fromTemplate(tpl *reseta.Template) error {
	l.ClinicName = tpl.ClinicName
	l.DoctorName = tpl.DoctorName
	l.ProfessionalTitle = tpl.ProfessionalTitle
	l.DoctorCredentials = tpl.DoctorCredentials
	l.Specialty = tpl.Specialty
	l.ClinicAddress = tpl.ClinicAddress
	l.ClinicRoom = tpl.ClinicRoom
	l.ClinicCity = tpl.ClinicCity
	l.ClinicCountry = tpl.ClinicCountry
	l.Phone = tpl.Phone
	l.Mobile = tpl.Mobile
	l.Email = tpl.Email
	l.HeaderColor = tpl.HeaderColor
	l.AccentColor = tpl.AccentColor
	l.PaperColor = tpl.PaperColor
	l.ShowRxSymbol = tpl.ShowRxSymbol
	l.LicenseNo = tpl.LicenseNo
	l.PTRNo = tpl.PTRNo
	l.S2LicenseNo = tpl.S2LicenseNo

	if len(tpl.ClinicHours) == 0 {
		l.ClinicHours = ""
		return nil
	}
	encoded, err := json.Marshal(tpl.ClinicHours)
	if err != nil {
		return fmt.Errorf("store: encode clinic hours: %w", err)
	}
	l.ClinicHours = string(encoded)
	return nil
}
