package validation

import (
	"testing"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	if msg := v.ValidateField(reseta.FieldEmail, "doc@clinic.ph"); msg != "" {
		t.Fatalf("valid email rejected: %q", msg)
	}
	for _, bad := range []string{"doc", "doc@clinic", "doc clinic@x.ph", "@clinic.ph"} {
		if msg := v.ValidateField(reseta.FieldEmail, bad); msg == "" {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	v := NewValidator()

	for _, ok := range []string{"+63 (2) 8123-4567", "09171234567", "812-3456"} {
		if msg := v.ValidateField(reseta.FieldPhone, ok); msg != "" {
			t.Errorf("valid phone %q rejected: %q", ok, msg)
		}
	}
	for _, bad := range []string{"call me", "123", "12345678901234567890"} {
		if msg := v.ValidateField(reseta.FieldPhone, bad); msg == "" {
			t.Errorf("expected phone %q to be rejected", bad)
		}
	}
}

func TestOptionalMobileBlankIsValid(t *testing.T) {
	v := NewValidator()
	if msg := v.ValidateField(reseta.FieldMobile, ""); msg != "" {
		t.Fatalf("blank optional mobile should be valid, got %q", msg)
	}
	if msg := v.ValidateField(reseta.FieldMobile, "  "); msg != "" {
		t.Fatalf("whitespace optional mobile should be valid, got %q", msg)
	}
}

func TestRequiredFieldBlankIsInvalid(t *testing.T) {
	v := NewValidator()
	if msg := v.ValidateField(reseta.FieldPhone, ""); msg == "" {
		t.Fatal("blank required phone should be invalid")
	}
	if msg := v.ValidateField(reseta.FieldEmail, ""); msg == "" {
		t.Fatal("blank required email should be invalid")
	}
}

func TestCheckRecordsViolation(t *testing.T) {
	v := NewValidator()
	out := Violations{}
	v.Check(reseta.FieldEmail, "nope", out)
	v.Check(reseta.FieldMobile, "", out)

	if out.Empty() {
		t.Fatal("expected a violation")
	}
	if _, ok := out[reseta.FieldEmail]; !ok {
		t.Fatal("email violation missing")
	}
	if _, ok := out[reseta.FieldMobile]; ok {
		t.Fatal("blank optional mobile should not violate")
	}
}
