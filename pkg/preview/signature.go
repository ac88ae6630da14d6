package preview

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// signaturePolicy keeps the signature block down to a single image element.
// Data-URI images are allowed because scanned signatures usually arrive
// inline rather than as hosted files.
var signaturePolicy = newSignaturePolicy()

func newSignaturePolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("img")
	policy.AllowAttrs("src", "alt", "class").OnElements("img")
	policy.AllowStandardURLs()
	policy.AllowDataURIImages()
	return policy
}

// signatureMarkup builds the sanitized signature image. The rp-signature
// class suppresses the image background in the stylesheet so the scan
// composites over the paper color. An empty reference, or one the policy
// strips entirely, yields no markup.
func signatureMarkup(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	raw := `<img src="` + html.EscapeString(ref) + `" alt="Doctor signature" class="rp-signature">`
	clean := strings.TrimSpace(signaturePolicy.Sanitize(raw))
	if !strings.Contains(clean, "src=") {
		// The policy rejected the reference (bad scheme etc.); drop the block.
		return ""
	}
	return clean
}
