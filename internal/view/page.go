package view

// EditPage carries the pre-rendered fragments and chrome data for the editor
// page shell. Panel, preview, and ThemeCSS fields hold trusted renderer
// output and are injected unescaped; everything else escapes normally.
type EditPage struct {
	Title         string
	LetterheadID  string
	ContactPanel  string
	DesignPanel   string
	Preview       string
	Palettes      []string
	ActivePalette string
	ThemeCSS      string
	AssetPrefix   string
}

// RenderEditPage renders the full editor page.
func (e *Engine) RenderEditPage(page EditPage) (string, error) {
	prefix := page.AssetPrefix
	if prefix == "" {
		prefix = "/assets"
	}
	title := page.Title
	if title == "" {
		title = "Letterhead Editor"
	}

	return e.RenderTemplate("edit", map[string]any{
		"title":          title,
		"letterhead_id":  page.LetterheadID,
		"contact_panel":  page.ContactPanel,
		"design_panel":   page.DesignPanel,
		"preview":        page.Preview,
		"palettes":       page.Palettes,
		"active_palette": page.ActivePalette,
		"theme_css":      page.ThemeCSS,
		"asset_prefix":   prefix,
	})
}
