// Package preview projects a letterhead template into a read-only visual
// mock-up of the final prescription document. Rendering is a pure function
// of the record plus an optional signature reference; nothing here mutates
// state. Empty fields substitute fixed literal placeholders, and malformed
// color strings render as given rather than failing.
package preview

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
)

// Literal placeholder text substituted when a field is empty. These are
// strict substitutions, not heuristics.
const (
	fallbackClinicName = "Clinic Name"
	fallbackDoctorName = "Doctor Name"
	fallbackTitle      = "MD"
	fallbackSpecialty  = "Specialty"
	fallbackAddress    = "Address"
	fallbackNA         = "N/A"
)

// Renderer produces the letterhead preview.
type Renderer struct{}

// New constructs the preview renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render projects the template into preview HTML. The optional signature in
// options composites into the footer above the doctor identity line.
func (r *Renderer) Render(_ context.Context, tpl *reseta.Template, options render.Options) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("preview: template is nil")
	}

	var b strings.Builder
	b.Grow(2048)

	fmt.Fprintf(&b, `<div class="rp-preview" style="background-color: %s">`+"\n", html.EscapeString(tpl.PaperColor))

	writeHeader(&b, tpl)
	writeContact(&b, tpl)
	writeHours(&b, tpl)
	writeRxSymbol(&b, tpl)

	// Fixed-height placeholder where prescription content will appear; the
	// preview never renders actual prescription content.
	b.WriteString(`<div class="rp-preview-body" aria-hidden="true"></div>` + "\n")

	writeFooter(&b, tpl, options.Signature)

	b.WriteString(`</div>` + "\n")
	return []byte(b.String()), nil
}

func writeHeader(b *strings.Builder, tpl *reseta.Template) {
	b.WriteString(`<header class="rp-preview-header">` + "\n")

	fmt.Fprintf(b, `<h2 class="rp-clinic-name" style="color: %s">%s</h2>`+"\n",
		html.EscapeString(tpl.HeaderColor),
		html.EscapeString(orFallback(tpl.ClinicName, fallbackClinicName)))

	identity := doctorIdentity(tpl)
	if creds := strings.TrimSpace(tpl.DoctorCredentials); creds != "" {
		identity += ", " + creds
	}
	fmt.Fprintf(b, `<p class="rp-doctor">%s</p>`+"\n", html.EscapeString(identity))

	fmt.Fprintf(b, `<p class="rp-specialty">%s</p>`+"\n",
		html.EscapeString(orFallback(tpl.Specialty, fallbackSpecialty)))

	b.WriteString(`</header>` + "\n")
}

func writeContact(b *strings.Builder, tpl *reseta.Template) {
	b.WriteString(`<div class="rp-preview-contact">` + "\n")

	b.WriteString(`<div class="rp-contact-address">` + "\n")
	if room := strings.TrimSpace(tpl.ClinicRoom); room != "" {
		fmt.Fprintf(b, `<span>%s</span>`+"\n", html.EscapeString(room))
	}
	fmt.Fprintf(b, `<span>%s</span>`+"\n", html.EscapeString(orFallback(tpl.ClinicAddress, fallbackAddress)))
	if city := strings.TrimSpace(tpl.ClinicCity); city != "" {
		fmt.Fprintf(b, `<span>%s</span>`+"\n", html.EscapeString(city))
	}
	fmt.Fprintf(b, `<span>%s</span>`+"\n", html.EscapeString(tpl.ClinicCountry))
	b.WriteString(`</div>` + "\n")

	b.WriteString(`<div class="rp-contact-lines">` + "\n")
	fmt.Fprintf(b, `<span>Tel: %s</span>`+"\n", html.EscapeString(orFallback(tpl.Phone, fallbackNA)))
	if mobile := strings.TrimSpace(tpl.Mobile); mobile != "" {
		fmt.Fprintf(b, `<span>Mobile: %s</span>`+"\n", html.EscapeString(mobile))
	}
	fmt.Fprintf(b, `<span>Email: %s</span>`+"\n", html.EscapeString(orFallback(tpl.Email, fallbackNA)))
	b.WriteString(`</div>` + "\n")

	b.WriteString(`</div>` + "\n")
}

// writeHours emits the clinic-hours block only when at least one day has a
// non-empty value; otherwise the block, heading included, is omitted.
func writeHours(b *strings.Builder, tpl *reseta.Template) {
	entries := tpl.HoursEntries()
	if len(entries) == 0 {
		return
	}

	b.WriteString(`<div class="rp-preview-hours">` + "\n")
	b.WriteString(`<h3>Clinic Hours</h3>` + "\n")
	for _, entry := range entries {
		fmt.Fprintf(b, `<span>%s: %s</span>`+"\n",
			html.EscapeString(entry.Label), html.EscapeString(entry.Hours))
	}
	b.WriteString(`</div>` + "\n")
}

func writeRxSymbol(b *strings.Builder, tpl *reseta.Template) {
	if !tpl.ShowRxSymbol {
		return
	}
	fmt.Fprintf(b, `<div class="rp-rx-symbol" style="color: %s" aria-hidden="true">℞</div>`+"\n",
		html.EscapeString(tpl.AccentColor))
}

func writeFooter(b *strings.Builder, tpl *reseta.Template, signature string) {
	b.WriteString(`<footer class="rp-preview-footer">` + "\n")

	if sig := signatureMarkup(signature); sig != "" {
		b.WriteString(sig + "\n")
	}

	// No credentials in the footer identity line.
	fmt.Fprintf(b, `<p class="rp-footer-doctor">%s</p>`+"\n", html.EscapeString(doctorIdentity(tpl)))

	fmt.Fprintf(b, `<span>License No. %s</span>`+"\n", html.EscapeString(orFallback(tpl.LicenseNo, fallbackNA)))
	if ptr := strings.TrimSpace(tpl.PTRNo); ptr != "" {
		fmt.Fprintf(b, `<span>PTR No. %s</span>`+"\n", html.EscapeString(ptr))
	}
	if s2 := strings.TrimSpace(tpl.S2LicenseNo); s2 != "" {
		fmt.Fprintf(b, `<span>S2 No. %s</span>`+"\n", html.EscapeString(s2))
	}

	b.WriteString(`</footer>` + "\n")
}

func doctorIdentity(tpl *reseta.Template) string {
	return orFallback(tpl.DoctorName, fallbackDoctorName) + ", " + orFallback(tpl.ProfessionalTitle, fallbackTitle)
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
