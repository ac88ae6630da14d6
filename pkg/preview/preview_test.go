package preview

import (
	"context"
	"strings"
	"testing"

	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

func renderPreview(t *testing.T, tpl *reseta.Template, options render.Options) string {
	t.Helper()
	out, err := New().Render(context.Background(), tpl, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestPreviewEmptyRecordFallbacks(t *testing.T) {
	tpl := reseta.New()
	tpl.ProfessionalTitle = "" // New seeds "MD"; clear it to exercise the fallback

	html := renderPreview(t, tpl, render.Options{})

	for _, want := range []string{
		">Clinic Name</h2>",
		">Doctor Name, MD</p>",
		">Specialty</p>",
		"<span>Address</span>",
		"<span>Tel: N/A</span>",
		"<span>Email: N/A</span>",
		"<span>License No. N/A</span>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestPreviewFilledValuesReplaceFallbacks(t *testing.T) {
	tpl := reseta.New()
	tpl.ClinicName = "Sta. Rosa Family Clinic"
	tpl.DoctorName = "Maria Reyes"
	tpl.Specialty = "Pediatrics"
	tpl.Phone = "+63 2 8123 4567"
	tpl.Email = "clinic@example.ph"
	tpl.LicenseNo = "0123456"

	html := renderPreview(t, tpl, render.Options{})

	for _, want := range []string{
		">Sta. Rosa Family Clinic</h2>",
		">Maria Reyes, MD</p>",
		">Pediatrics</p>",
		"<span>Tel: +63 2 8123 4567</span>",
		"<span>Email: clinic@example.ph</span>",
		"<span>License No. 0123456</span>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "Clinic Name</h2>") {
		t.Error("fallback clinic name must not appear once the field is set")
	}
}

func TestPreviewCredentialsHeaderOnly(t *testing.T) {
	tpl := reseta.New()
	tpl.DoctorName = "Jose Cruz"
	tpl.DoctorCredentials = "FPCP"

	html := renderPreview(t, tpl, render.Options{})

	if !strings.Contains(html, `class="rp-doctor">Jose Cruz, MD, FPCP</p>`) {
		t.Fatalf("header must append credentials:\n%s", html)
	}
	if !strings.Contains(html, `class="rp-footer-doctor">Jose Cruz, MD</p>`) {
		t.Fatal("footer identity must omit credentials")
	}
}

func TestPreviewNoCredentialsNoTrailingComma(t *testing.T) {
	tpl := reseta.New()
	tpl.DoctorName = "Jose Cruz"

	html := renderPreview(t, tpl, render.Options{})
	if !strings.Contains(html, `class="rp-doctor">Jose Cruz, MD</p>`) {
		t.Fatalf("identity line malformed:\n%s", html)
	}
}

func TestPreviewOptionalContactLines(t *testing.T) {
	bare := renderPreview(t, reseta.New(), render.Options{})
	if strings.Contains(bare, "Mobile:") {
		t.Error("mobile line must be omitted when empty")
	}

	tpl := reseta.New()
	tpl.ClinicRoom = "Rm 204"
	tpl.ClinicCity = "Quezon City"
	tpl.Mobile = "0917 555 0101"

	html := renderPreview(t, tpl, render.Options{})
	for _, want := range []string{
		"<span>Rm 204</span>",
		"<span>Quezon City</span>",
		"<span>Mobile: 0917 555 0101</span>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestPreviewHoursBlockOmittedWhenEmpty(t *testing.T) {
	html := renderPreview(t, reseta.New(), render.Options{})
	if strings.Contains(html, "Clinic Hours") {
		t.Fatal("hours block must be fully omitted when no day has hours")
	}

	tpl := reseta.New()
	tpl.SetHours("monday", "   ")
	html = renderPreview(t, tpl, render.Options{})
	if strings.Contains(html, "Clinic Hours") {
		t.Fatal("whitespace-only hours must not produce the block")
	}
}

func TestPreviewHoursCanonicalOrder(t *testing.T) {
	tpl := reseta.New()
	tpl.SetHours("friday", "1-5 PM")
	tpl.SetHours("monday", "9-12 AM")

	html := renderPreview(t, tpl, render.Options{})

	if !strings.Contains(html, "Clinic Hours") {
		t.Fatal("expected hours heading")
	}
	mon := strings.Index(html, "<span>Monday: 9-12 AM</span>")
	fri := strings.Index(html, "<span>Friday: 1-5 PM</span>")
	if mon == -1 || fri == -1 {
		t.Fatalf("expected capitalized day entries:\n%s", html)
	}
	if mon > fri {
		t.Fatal("days must render in weekday order regardless of edit order")
	}
	if strings.Contains(html, "Tuesday:") {
		t.Error("days without hours must not render")
	}
}

func TestPreviewRxSymbolToggle(t *testing.T) {
	on := reseta.New()
	on.AccentColor = "#aa0000"
	html := renderPreview(t, on, render.Options{})
	if !strings.Contains(html, `class="rp-rx-symbol" style="color: #aa0000"`) {
		t.Fatalf("expected accent-colored symbol:\n%s", html)
	}
	if !strings.Contains(html, "℞") {
		t.Fatal("expected Rx glyph")
	}

	off := reseta.New()
	off.ShowRxSymbol = false
	if html := renderPreview(t, off, render.Options{}); strings.Contains(html, "rp-rx-symbol") {
		t.Fatal("symbol must be absent when toggled off")
	}
}

func TestPreviewColorsApplied(t *testing.T) {
	tpl := reseta.New()
	tpl.HeaderColor = "#222222"
	tpl.PaperColor = "#fdf6e3"

	html := renderPreview(t, tpl, render.Options{})
	if !strings.Contains(html, `style="background-color: #fdf6e3"`) {
		t.Error("paper color not applied to sheet")
	}
	if !strings.Contains(html, `class="rp-clinic-name" style="color: #222222"`) {
		t.Error("header color not applied to clinic name")
	}
}

func TestPreviewMalformedColorRendersAsGiven(t *testing.T) {
	tpl := reseta.New()
	tpl.PaperColor = "not-a-color"

	html := renderPreview(t, tpl, render.Options{})
	if !strings.Contains(html, `style="background-color: not-a-color"`) {
		t.Fatal("malformed color must pass through, not fail")
	}
}

func TestPreviewLicenseLinesConditional(t *testing.T) {
	bare := renderPreview(t, reseta.New(), render.Options{})
	if strings.Contains(bare, "PTR No.") || strings.Contains(bare, "S2 No.") {
		t.Fatal("PTR and S2 lines must be omitted when empty")
	}

	tpl := reseta.New()
	tpl.PTRNo = "7654321"
	tpl.S2LicenseNo = "S2-99"

	html := renderPreview(t, tpl, render.Options{})
	if !strings.Contains(html, "<span>PTR No. 7654321</span>") {
		t.Error("expected PTR line")
	}
	if !strings.Contains(html, "<span>S2 No. S2-99</span>") {
		t.Error("expected S2 line")
	}
}

func TestPreviewSignature(t *testing.T) {
	none := renderPreview(t, reseta.New(), render.Options{})
	if strings.Contains(none, "rp-signature") {
		t.Fatal("no signature markup without a reference")
	}

	withSig := renderPreview(t, reseta.New(), render.Options{
		Signature: "data:image/png;base64,iVBORw0KGgo=",
	})
	if !strings.Contains(withSig, `class="rp-signature"`) {
		t.Fatalf("expected signature image:\n%s", withSig)
	}
	if !strings.Contains(withSig, `alt="Doctor signature"`) {
		t.Error("signature image missing alt text")
	}

	hostile := renderPreview(t, reseta.New(), render.Options{
		Signature: "javascript:alert(1)",
	})
	if strings.Contains(hostile, "javascript:") {
		t.Fatal("unsafe signature reference leaked into output")
	}
}

func TestPreviewBodyPlaceholderAlwaysPresent(t *testing.T) {
	html := renderPreview(t, reseta.New(), render.Options{})
	if !strings.Contains(html, `class="rp-preview-body" aria-hidden="true"`) {
		t.Fatal("expected fixed body placeholder")
	}
}

func TestPreviewEscapesValues(t *testing.T) {
	tpl := reseta.New()
	tpl.ClinicName = `<img src=x onerror=alert(1)>`

	html := renderPreview(t, tpl, render.Options{})
	if strings.Contains(html, "<img src=x") {
		t.Fatal("raw markup leaked into output")
	}
}

func TestPreviewNilTemplate(t *testing.T) {
	if _, err := New().Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("expected error for nil template")
	}
}
