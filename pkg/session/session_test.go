package session

import (
	"testing"

	"github.com/resetalabs/resetapad/pkg/reseta"
)

func rejectAll(field, value string) string {
	if value == "" {
		return ""
	}
	return "Invalid format"
}

func TestApplyFieldMutatesRecordOnly(t *testing.T) {
	s := New(WithValidator(rejectAll))

	if err := s.ApplyField(reseta.FieldClinicAddress, "12 Mabini St"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	tpl, errs := s.Snapshot()
	if tpl.ClinicAddress != "12 Mabini St" {
		t.Fatalf("address = %q", tpl.ClinicAddress)
	}
	if len(errs) != 0 {
		t.Fatalf("plain channel must not touch errors, got %v", errs)
	}
}

func TestApplyFieldWithValidationStoresErrorAndValue(t *testing.T) {
	s := New(WithValidator(rejectAll))

	if err := s.ApplyFieldWithValidation(reseta.FieldPhone, "bad value"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	tpl, errs := s.Snapshot()
	// The record mirrors the raw input even while invalid.
	if tpl.Phone != "bad value" {
		t.Fatalf("phone = %q", tpl.Phone)
	}
	if errs.ErrorFor(reseta.FieldPhone) != "Invalid format" {
		t.Fatalf("phone error = %q", errs.ErrorFor(reseta.FieldPhone))
	}
	if errs.ErrorFor(reseta.FieldEmail) != "" {
		t.Fatalf("email should stay valid, got %q", errs.ErrorFor(reseta.FieldEmail))
	}
}

func TestApplyFieldWithValidationClearsError(t *testing.T) {
	s := New(WithValidator(rejectAll))

	if err := s.ApplyFieldWithValidation(reseta.FieldPhone, "bad"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := s.ApplyFieldWithValidation(reseta.FieldPhone, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	_, errs := s.Snapshot()
	if errs.ErrorFor(reseta.FieldPhone) != "" {
		t.Fatalf("error should clear once valid, got %q", errs.ErrorFor(reseta.FieldPhone))
	}
}

func TestApplyRoutesByFieldCatalog(t *testing.T) {
	s := New(WithValidator(rejectAll))

	// clinicCountry takes the plain channel: no error despite rejectAll.
	if err := s.Apply(reseta.FieldClinicCountry, "Philippines"); err != nil {
		t.Fatalf("apply country: %v", err)
	}
	// mobile takes the validated channel.
	if err := s.Apply(reseta.FieldMobile, "whatever"); err != nil {
		t.Fatalf("apply mobile: %v", err)
	}

	tpl, errs := s.Snapshot()
	if tpl.ClinicCountry != "Philippines" {
		t.Fatalf("country = %q", tpl.ClinicCountry)
	}
	if errs.ErrorFor(reseta.FieldClinicCountry) != "" {
		t.Fatal("country must not be validated")
	}
	if errs.ErrorFor(reseta.FieldMobile) == "" {
		t.Fatal("mobile should carry a validation error")
	}
}

func TestApplyUnknownField(t *testing.T) {
	s := New()
	if err := s.Apply("dosage", "10mg"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestApplyBoolToggle(t *testing.T) {
	s := New()

	if err := s.ApplyBool(reseta.FieldShowRxSymbol, false); err != nil {
		t.Fatalf("apply: %v", err)
	}
	tpl, _ := s.Snapshot()
	if tpl.ShowRxSymbol {
		t.Fatal("toggle should be off")
	}

	if err := s.ApplyBool(reseta.FieldShowRxSymbol, true); err != nil {
		t.Fatalf("apply: %v", err)
	}
	tpl, _ = s.Snapshot()
	if !tpl.ShowRxSymbol {
		t.Fatal("toggle should be on")
	}
}

func TestLastWriteWins(t *testing.T) {
	s := New()
	for _, value := range []string{"one", "two", "three"} {
		if err := s.ApplyField(reseta.FieldClinicName, value); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	tpl, _ := s.Snapshot()
	if tpl.ClinicName != "three" {
		t.Fatalf("clinicName = %q, want last write", tpl.ClinicName)
	}
}

func TestSnapshotDetached(t *testing.T) {
	s := New()
	if err := s.ApplyHours("monday", "9am-5pm"); err != nil {
		t.Fatalf("hours: %v", err)
	}

	tpl, _ := s.Snapshot()
	tpl.ClinicHours["monday"] = "mutated"

	fresh, _ := s.Snapshot()
	if fresh.ClinicHours["monday"] != "9am-5pm" {
		t.Fatalf("snapshot leaked shared state: %q", fresh.ClinicHours["monday"])
	}
}

func TestWithTemplateSeedsCopy(t *testing.T) {
	seed := reseta.New()
	seed.ClinicName = "Seed Clinic"

	s := New(WithTemplate(seed))
	seed.ClinicName = "mutated after construction"

	tpl, _ := s.Snapshot()
	if tpl.ClinicName != "Seed Clinic" {
		t.Fatalf("session should clone the seed, got %q", tpl.ClinicName)
	}
}
