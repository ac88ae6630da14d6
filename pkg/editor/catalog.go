package editor

import "github.com/resetalabs/resetapad/pkg/reseta"

// FieldSpec describes one editable input: how it renders and which update
// channel its edits take.
type FieldSpec struct {
	Name        string
	Label       string
	Kind        string // input type: text, tel, email
	Placeholder string
	Required    bool
	Validated   bool
}

// ContactFields returns the contact-information catalog in display order.
// Required and validated flags come from the record package so the editors,
// the session, and the update endpoint can never disagree.
func ContactFields() []FieldSpec {
	return specList{
		{Name: reseta.FieldClinicAddress, Label: "Clinic Address", Kind: "text", Placeholder: "Street, building"},
		{Name: reseta.FieldClinicRoom, Label: "Room / Floor", Kind: "text", Placeholder: "Rm 204, 2F"},
		{Name: reseta.FieldClinicCity, Label: "City", Kind: "text"},
		{Name: reseta.FieldClinicCountry, Label: "Country", Kind: "text"},
		{Name: reseta.FieldPhone, Label: "Phone", Kind: "tel", Placeholder: "(02) 8123-4567"},
		{Name: reseta.FieldMobile, Label: "Mobile", Kind: "tel", Placeholder: "0917 123 4567"},
		{Name: reseta.FieldEmail, Label: "Email", Kind: "email", Placeholder: "clinic@example.ph"},
	}.withRecordFlags()
}

// ColorFields returns the design catalog's three color fields.
func ColorFields() []FieldSpec {
	return []FieldSpec{
		{Name: reseta.FieldHeaderColor, Label: "Header Color"},
		{Name: reseta.FieldAccentColor, Label: "Accent Color"},
		{Name: reseta.FieldPaperColor, Label: "Paper Color"},
	}
}

type specList []FieldSpec

func (l specList) withRecordFlags() []FieldSpec {
	out := make([]FieldSpec, len(l))
	for i, spec := range l {
		spec.Required = reseta.Required(spec.Name)
		spec.Validated = reseta.LiveValidated(spec.Name)
		out[i] = spec
	}
	return out
}
