package reseta

import (
	"fmt"
	"strings"
)

// Field identifiers as emitted by the editors and the update endpoint. These
// are the wire names; the record is always addressed through them so the
// editors, the session, and persistence agree on a single vocabulary.
const (
	FieldClinicName        = "clinicName"
	FieldDoctorName        = "doctorName"
	FieldProfessionalTitle = "professionalTitle"
	FieldDoctorCredentials = "doctorCredentials"
	FieldSpecialty         = "specialty"

	FieldClinicAddress = "clinicAddress"
	FieldClinicRoom    = "clinicRoom"
	FieldClinicCity    = "clinicCity"
	FieldClinicCountry = "clinicCountry"
	FieldPhone         = "phone"
	FieldMobile        = "mobile"
	FieldEmail         = "email"

	FieldHeaderColor  = "headerColor"
	FieldAccentColor  = "accentColor"
	FieldPaperColor   = "paperColor"
	FieldShowRxSymbol = "showRxSymbol"

	FieldLicenseNo   = "licenseNo"
	FieldPTRNo       = "ptrNo"
	FieldS2LicenseNo = "s2LicenseNo"
)

// Weekdays is the canonical display order for clinic hours. The editing
// surface accepts hours for any of these days; anything else is rejected.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// Template is the editable record describing one prescription letterhead's
// content and styling. It is the single source of truth for the editors and
// the preview: inputs never hold copies, they render whatever is here.
type Template struct {
	ClinicName        string `json:"clinicName" yaml:"clinicName"`
	DoctorName        string `json:"doctorName" yaml:"doctorName"`
	ProfessionalTitle string `json:"professionalTitle" yaml:"professionalTitle"`
	DoctorCredentials string `json:"doctorCredentials,omitempty" yaml:"doctorCredentials,omitempty"`
	Specialty         string `json:"specialty,omitempty" yaml:"specialty,omitempty"`

	ClinicAddress string `json:"clinicAddress" yaml:"clinicAddress"`
	ClinicRoom    string `json:"clinicRoom,omitempty" yaml:"clinicRoom,omitempty"`
	ClinicCity    string `json:"clinicCity,omitempty" yaml:"clinicCity,omitempty"`
	ClinicCountry string `json:"clinicCountry" yaml:"clinicCountry"`
	Phone         string `json:"phone" yaml:"phone"`
	Mobile        string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	Email         string `json:"email" yaml:"email"`

	HeaderColor  string `json:"headerColor" yaml:"headerColor"`
	AccentColor  string `json:"accentColor" yaml:"accentColor"`
	PaperColor   string `json:"paperColor" yaml:"paperColor"`
	ShowRxSymbol bool   `json:"showRxSymbol" yaml:"showRxSymbol"`

	LicenseNo   string `json:"licenseNo" yaml:"licenseNo"`
	PTRNo       string `json:"ptrNo,omitempty" yaml:"ptrNo,omitempty"`
	S2LicenseNo string `json:"s2LicenseNo,omitempty" yaml:"s2LicenseNo,omitempty"`

	ClinicHours map[string]string `json:"clinicHours,omitempty" yaml:"clinicHours,omitempty"`
}

// New returns a template with the stock design defaults applied. Content
// fields start empty; the preview substitutes its literal placeholders until
// they are filled in.
func New() *Template {
	return &Template{
		ProfessionalTitle: "MD",
		HeaderColor:       "#1a5276",
		AccentColor:       "#1a5276",
		PaperColor:        "#ffffff",
		ShowRxSymbol:      true,
		ClinicHours:       map[string]string{},
	}
}

// FieldErrors carries externally computed validation messages keyed by field
// name. An absent key, or an empty value, means the field is currently valid.
type FieldErrors map[string]string

// ErrorFor returns the display message for a field, or "" when valid.
func (e FieldErrors) ErrorFor(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

var requiredFields = map[string]struct{}{
	FieldClinicAddress: {},
	FieldClinicCountry: {},
	FieldPhone:         {},
	FieldEmail:         {},
}

var liveValidatedFields = map[string]struct{}{
	FieldPhone:  {},
	FieldMobile: {},
	FieldEmail:  {},
}

// Required reports whether the field carries the required marker in the
// editors. The record itself never enforces non-emptiness; that is the
// validator's job.
func Required(field string) bool {
	_, ok := requiredFields[field]
	return ok
}

// LiveValidated reports whether edits to the field route through the
// validated update channel.
func LiveValidated(field string) bool {
	_, ok := liveValidatedFields[field]
	return ok
}

type fieldAccessor struct {
	get func(*Template) string
	set func(*Template, string)
}

var fieldAccessors = map[string]fieldAccessor{
	FieldClinicName: {
		get: func(t *Template) string { return t.ClinicName },
		set: func(t *Template, v string) { t.ClinicName = v },
	},
	FieldDoctorName: {
		get: func(t *Template) string { return t.DoctorName },
		set: func(t *Template, v string) { t.DoctorName = v },
	},
	FieldProfessionalTitle: {
		get: func(t *Template) string { return t.ProfessionalTitle },
		set: func(t *Template, v string) { t.ProfessionalTitle = v },
	},
	FieldDoctorCredentials: {
		get: func(t *Template) string { return t.DoctorCredentials },
		set: func(t *Template, v string) { t.DoctorCredentials = v },
	},
	FieldSpecialty: {
		get: func(t *Template) string { return t.Specialty },
		set: func(t *Template, v string) { t.Specialty = v },
	},
	FieldClinicAddress: {
		get: func(t *Template) string { return t.ClinicAddress },
		set: func(t *Template, v string) { t.ClinicAddress = v },
	},
	FieldClinicRoom: {
		get: func(t *Template) string { return t.ClinicRoom },
		set: func(t *Template, v string) { t.ClinicRoom = v },
	},
	FieldClinicCity: {
		get: func(t *Template) string { return t.ClinicCity },
		set: func(t *Template, v string) { t.ClinicCity = v },
	},
	FieldClinicCountry: {
		get: func(t *Template) string { return t.ClinicCountry },
		set: func(t *Template, v string) { t.ClinicCountry = v },
	},
	FieldPhone: {
		get: func(t *Template) string { return t.Phone },
		set: func(t *Template, v string) { t.Phone = v },
	},
	FieldMobile: {
		get: func(t *Template) string { return t.Mobile },
		set: func(t *Template, v string) { t.Mobile = v },
	},
	FieldEmail: {
		get: func(t *Template) string { return t.Email },
		set: func(t *Template, v string) { t.Email = v },
	},
	FieldHeaderColor: {
		get: func(t *Template) string { return t.HeaderColor },
		set: func(t *Template, v string) { t.HeaderColor = v },
	},
	FieldAccentColor: {
		get: func(t *Template) string { return t.AccentColor },
		set: func(t *Template, v string) { t.AccentColor = v },
	},
	FieldPaperColor: {
		get: func(t *Template) string { return t.PaperColor },
		set: func(t *Template, v string) { t.PaperColor = v },
	},
	FieldShowRxSymbol: {
		get: func(t *Template) string {
			if t.ShowRxSymbol {
				return "true"
			}
			return "false"
		},
		set: func(t *Template, v string) { t.ShowRxSymbol = parseBool(v) },
	},
	FieldLicenseNo: {
		get: func(t *Template) string { return t.LicenseNo },
		set: func(t *Template, v string) { t.LicenseNo = v },
	},
	FieldPTRNo: {
		get: func(t *Template) string { return t.PTRNo },
		set: func(t *Template, v string) { t.PTRNo = v },
	},
	FieldS2LicenseNo: {
		get: func(t *Template) string { return t.S2LicenseNo },
		set: func(t *Template, v string) { t.S2LicenseNo = v },
	},
}

// Set applies one edit by field name. Values arrive as the raw strings posted
// by the inputs; showRxSymbol accepts checkbox-style booleans ("true", "1",
// "on"). The raw value is stored unmodified for every string field.
func (t *Template) Set(field, value string) error {
	accessor, ok := fieldAccessors[field]
	if !ok {
		return fmt.Errorf("reseta: unknown field %q", field)
	}
	accessor.set(t, value)
	return nil
}

// Value returns the canonical string form of a field, which is exactly what
// the bound input must display.
func (t *Template) Value(field string) (string, error) {
	accessor, ok := fieldAccessors[field]
	if !ok {
		return "", fmt.Errorf("reseta: unknown field %q", field)
	}
	return accessor.get(t), nil
}

// KnownField reports whether the name addresses a template field.
func KnownField(field string) bool {
	_, ok := fieldAccessors[field]
	return ok
}

// SetHours records the hours string for a day. Blank strings mark the day as
// "not set" and suppress it from the preview.
func (t *Template) SetHours(day, hours string) error {
	day = strings.ToLower(strings.TrimSpace(day))
	if !validDay(day) {
		return fmt.Errorf("reseta: unknown day %q", day)
	}
	if t.ClinicHours == nil {
		t.ClinicHours = map[string]string{}
	}
	t.ClinicHours[day] = hours
	return nil
}

// HoursEntry is one displayable clinic-hours line.
type HoursEntry struct {
	Day   string
	Label string
	Hours string
}

// HoursEntries returns the non-empty hours in canonical week order.
func (t *Template) HoursEntries() []HoursEntry {
	if len(t.ClinicHours) == 0 {
		return nil
	}
	var entries []HoursEntry
	for _, day := range Weekdays {
		hours := strings.TrimSpace(t.ClinicHours[day])
		if hours == "" {
			continue
		}
		entries = append(entries, HoursEntry{Day: day, Label: DayLabel(day), Hours: hours})
	}
	return entries
}

// HasHours reports whether at least one day has a non-empty hours value.
func (t *Template) HasHours() bool {
	return len(t.HoursEntries()) > 0
}

// Clone returns a deep copy, detaching the hours map.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	clone := *t
	if t.ClinicHours != nil {
		clone.ClinicHours = make(map[string]string, len(t.ClinicHours))
		for day, hours := range t.ClinicHours {
			clone.ClinicHours[day] = hours
		}
	}
	return &clone
}

// DayLabel capitalizes a day name for display ("monday" -> "Monday").
func DayLabel(day string) string {
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func validDay(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "yes", "checked":
		return true
	default:
		return false
	}
}
