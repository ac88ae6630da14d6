package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

func renderContact(t *testing.T, tpl *reseta.Template, errs reseta.FieldErrors) string {
	t.Helper()
	out, err := NewContactEditor().Render(context.Background(), tpl, render.Options{Errors: errs})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestContactEditorControlledValues(t *testing.T) {
	tpl := reseta.New()
	tpl.ClinicAddress = "12 Mabini St"
	tpl.Phone = "+63 2 8123 4567"
	tpl.Email = "doc@clinic.ph"

	html := renderContact(t, tpl, nil)

	for _, want := range []string{
		`value="12 Mabini St"`,
		`value="+63 2 8123 4567"`,
		`value="doc@clinic.ph"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %s in output:\n%s", want, html)
		}
	}
}

func TestContactEditorUpdateChannelRouting(t *testing.T) {
	html := renderContact(t, reseta.New(), nil)

	// Validated fields carry the data-validate marker.
	for _, field := range []string{"phone", "mobile", "email"} {
		marker := `data-update-field="` + field + `" data-validate="true"`
		if !strings.Contains(html, marker) {
			t.Errorf("expected validated channel for %s", field)
		}
	}

	// Plain fields carry only the update marker.
	for _, field := range []string{"clinicAddress", "clinicRoom", "clinicCity", "clinicCountry"} {
		if !strings.Contains(html, `data-update-field="`+field+`"`) {
			t.Errorf("expected update marker for %s", field)
		}
		if strings.Contains(html, `data-update-field="`+field+`" data-validate="true"`) {
			t.Errorf("field %s must not route through validation", field)
		}
	}
}

func TestContactEditorRequiredMarkers(t *testing.T) {
	html := renderContact(t, reseta.New(), nil)

	requiredLabel := `Clinic Address <span class="rp-required" aria-hidden="true">*</span>`
	if !strings.Contains(html, requiredLabel) {
		t.Errorf("expected required marker on clinic address")
	}
	if strings.Contains(html, `Room / Floor <span class="rp-required"`) {
		t.Error("room is optional, must not carry required marker")
	}
	if strings.Contains(html, `>Mobile <span class="rp-required"`) {
		t.Error("mobile is optional, must not carry required marker")
	}
	if !strings.Contains(html, `id="rp-phone" name="phone"`) {
		t.Error("phone input missing")
	}
}

func TestContactEditorErrorChrome(t *testing.T) {
	errs := reseta.FieldErrors{"phone": "Invalid format"}
	html := renderContact(t, reseta.New(), errs)

	if !strings.Contains(html, `>Invalid format</p>`) {
		t.Fatalf("expected error message rendered verbatim:\n%s", html)
	}
	if !strings.Contains(html, `aria-invalid="true" aria-describedby="rp-phone-error"`) {
		t.Fatal("expected aria-invalid wiring on phone input")
	}
	if !strings.Contains(html, `rp-field-invalid" data-update-field="phone"`) {
		t.Fatal("expected invalid visual state on phone wrapper")
	}

	// The email input stays clean.
	if strings.Contains(html, `aria-describedby="rp-email-error"`) {
		t.Fatal("email must not render error chrome")
	}
}

func TestContactEditorEmptyErrorStringMeansValid(t *testing.T) {
	errs := reseta.FieldErrors{"phone": ""}
	html := renderContact(t, reseta.New(), errs)

	if strings.Contains(html, "rp-field-invalid") {
		t.Fatal("empty error string must not mark the field invalid")
	}
	if strings.Contains(html, `id="rp-phone-error"`) {
		t.Fatal("empty error string must not render an error element")
	}
}

func TestContactEditorEscapesValues(t *testing.T) {
	tpl := reseta.New()
	tpl.ClinicAddress = `<script>alert("x")</script>`

	html := renderContact(t, tpl, nil)
	if strings.Contains(html, "<script>") {
		t.Fatal("raw markup leaked into output")
	}
}

func TestContactEditorFragmentOnlySkipsSection(t *testing.T) {
	out, err := NewContactEditor().Render(context.Background(), reseta.New(), render.Options{FragmentOnly: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if strings.Contains(html, "<section") {
		t.Fatal("fragment output must not carry the section wrapper")
	}
	if !strings.Contains(html, `data-update-field="clinicAddress"`) {
		t.Fatal("fragment output must still carry the field markup")
	}
}

func TestContactEditorNilTemplate(t *testing.T) {
	_, err := NewContactEditor().Render(context.Background(), nil, render.Options{})
	if err == nil {
		t.Fatal("expected error for nil template")
	}
}
