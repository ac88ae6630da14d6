// Package handlers wires HTTP requests to letterhead sessions, rendering,
// and storage.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/resetalabs/resetapad/internal/config"
	"github.com/resetalabs/resetapad/internal/store"
	"github.com/resetalabs/resetapad/internal/view"
	"github.com/resetalabs/resetapad/pkg/editor"
	"github.com/resetalabs/resetapad/pkg/preview"
	"github.com/resetalabs/resetapad/pkg/render"
	"github.com/resetalabs/resetapad/pkg/reseta"
	"github.com/resetalabs/resetapad/pkg/themes"
	"github.com/resetalabs/resetapad/pkg/validation"
)

// Renderer names registered for the editing surface.
const (
	RendererContact = "contact-editor"
	RendererDesign  = "design-editor"
	RendererPreview = "preview"
)

// LetterheadHandler serves the editor page and the field update endpoints.
type LetterheadHandler struct {
	store       *store.Store
	sessions    *sessionCache
	selector    *themes.Selector
	renderers   *render.Registry
	views       *view.Engine
	validate    *validation.Validator
	assetPrefix string
	theme       config.ThemeConfig
}

// NewLetterheadHandler assembles the handler with its renderer registry.
// theme names the palette applied when a create request does not pick one.
func NewLetterheadHandler(st *store.Store, views *view.Engine, assetPrefix string, theme config.ThemeConfig) *LetterheadHandler {
	registry := render.NewRegistry()
	registry.MustRegister(editor.NewContactEditor())
	registry.MustRegister(editor.NewDesignEditor())
	registry.MustRegister(preview.New())

	validate := validation.NewValidator()
	return &LetterheadHandler{
		store:       st,
		sessions:    newSessionCache(st, validate),
		selector:    themes.NewSelector(),
		renderers:   registry,
		views:       views,
		validate:    validate,
		assetPrefix: assetPrefix,
		theme:       theme,
	}
}

// Register mounts the letterhead routes on the mux.
func (h *LetterheadHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /letterheads", h.List)
	mux.HandleFunc("POST /letterheads", h.Create)
	mux.HandleFunc("GET /letterheads/{id}/edit", h.EditPage)
	mux.HandleFunc("GET /letterheads/{id}/preview", h.Preview)
	mux.HandleFunc("GET /letterheads/{id}/panels/{name}", h.Panel)
	mux.HandleFunc("POST /letterheads/{id}/fields", h.UpdateField)
	mux.HandleFunc("POST /letterheads/{id}/hours", h.UpdateHours)
	mux.HandleFunc("POST /letterheads/{id}/theme", h.ApplyTheme)
	mux.HandleFunc("POST /letterheads/{id}/signature", h.SetSignature)
	mux.HandleFunc("POST /letterheads/{id}/validate", h.Validate)
	mux.HandleFunc("DELETE /letterheads/{id}", h.Delete)
}

// List returns all stored letterheads.
func (h *LetterheadHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	type item struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Clinic string `json:"clinic"`
	}
	items := make([]item, 0, len(rows))
	for _, row := range rows {
		items = append(items, item{ID: row.ID, Name: row.Name, Clinic: row.ClinicName})
	}
	respondJSON(w, http.StatusOK, items)
}

// Create inserts a new letterhead seeded with defaults and a palette, then
// reports its id. When the form names no theme, the configured default
// palette and variant apply.
func (h *LetterheadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_form")
		return
	}

	tpl := reseta.New()
	themeName := strings.TrimSpace(r.PostFormValue("theme"))
	variant := strings.TrimSpace(r.PostFormValue("variant"))
	if themeName == "" {
		themeName = h.theme.Default
		if variant == "" {
			variant = h.theme.Variant
		}
	}
	selection, err := h.selector.Select(themeName, variant)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown_theme")
		return
	}
	if err := themes.Apply(selection, tpl); err != nil {
		respondError(w, http.StatusInternalServerError, "theme_failed")
		return
	}

	row, err := h.store.Create(r.Context(), strings.TrimSpace(r.PostFormValue("name")), tpl)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	if err := h.store.SetTheme(r.Context(), row.ID, selection.Theme, selection.Variant); err != nil {
		respondError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": row.ID})
}

// EditPage renders the full editor: both panels, the palette picker, and the
// live preview. The active palette's tokens surface as CSS variables on the
// page so editor chrome can follow the theme.
func (h *LetterheadHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entry, err := h.sessions.get(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	name, signature, themeName, variant := entry.meta()
	tpl, errs := entry.sess.Snapshot()
	opts := render.Options{Errors: errs, Signature: signature}

	contact, err := h.renderFragment(r.Context(), RendererContact, tpl, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	design, err := h.renderFragment(r.Context(), RendererDesign, tpl, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	sheet, err := h.renderFragment(r.Context(), RendererPreview, tpl, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}

	page, err := h.views.RenderEditPage(view.EditPage{
		Title:         name,
		LetterheadID:  id,
		ContactPanel:  string(contact),
		DesignPanel:   string(design),
		Preview:       string(sheet),
		Palettes:      h.selector.Names(),
		ActivePalette: themeName,
		ThemeCSS:      h.themeCSS(themeName, variant),
		AssetPrefix:   h.assetPrefix,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondHTML(w, http.StatusOK, []byte(page))
}

// Preview returns the current preview fragment.
func (h *LetterheadHandler) Preview(w http.ResponseWriter, r *http.Request) {
	entry, err := h.sessions.get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	sheet, err := h.renderPreview(r.Context(), entry)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondHTML(w, http.StatusOK, sheet)
}

// Panel re-renders one editor panel. With ?fragment=1 the panel's section
// chrome is dropped so the client can swap just the field list in place.
func (h *LetterheadHandler) Panel(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name != RendererContact && name != RendererDesign {
		respondError(w, http.StatusNotFound, "unknown_panel")
		return
	}

	entry, err := h.sessions.get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	tpl, errs := entry.sess.Snapshot()
	opts := render.Options{
		Errors:       errs,
		FragmentOnly: r.URL.Query().Get("fragment") != "",
	}
	panel, err := h.renderFragment(r.Context(), name, tpl, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondHTML(w, http.StatusOK, panel)
}

// UpdateField applies one field edit through the session's update channels,
// persists the result, and returns the refreshed preview plus any validation
// message for the field.
func (h *LetterheadHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_form")
		return
	}
	field := r.PostFormValue("field")
	value := r.PostFormValue("value")

	id := r.PathValue("id")
	entry, err := h.sessions.get(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	if err := entry.sess.Apply(field, value); err != nil {
		respondError(w, http.StatusBadRequest, "unknown_field")
		return
	}

	tpl, errs := entry.sess.Snapshot()
	if err := h.store.Save(r.Context(), id, tpl); err != nil {
		respondError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	_, signature, _, _ := entry.meta()
	sheet, err := h.renderFragment(r.Context(), RendererPreview, tpl, render.Options{Signature: signature})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"field":   field,
		"error":   errs.ErrorFor(field),
		"preview": string(sheet),
	})
}

// UpdateHours records the hours text for one weekday.
func (h *LetterheadHandler) UpdateHours(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_form")
		return
	}

	id := r.PathValue("id")
	entry, err := h.sessions.get(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	if err := entry.sess.ApplyHours(r.PostFormValue("day"), r.PostFormValue("hours")); err != nil {
		respondError(w, http.StatusBadRequest, "unknown_day")
		return
	}

	tpl, _ := entry.sess.Snapshot()
	if err := h.store.Save(r.Context(), id, tpl); err != nil {
		respondError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	_, signature, _, _ := entry.meta()
	sheet, err := h.renderFragment(r.Context(), RendererPreview, tpl, render.Options{Signature: signature})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"preview": string(sheet)})
}

// ApplyTheme resolves a palette and writes its colors through the same field
// channel an edit would use, so the design panel and preview both follow.
func (h *LetterheadHandler) ApplyTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_form")
		return
	}

	selection, err := h.selector.Select(r.PostFormValue("theme"), r.PostFormValue("variant"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown_theme")
		return
	}
	tokens, err := themes.Tokens(selection)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "theme_failed")
		return
	}

	id := r.PathValue("id")
	entry, err := h.sessions.get(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	colors := map[string]string{
		reseta.FieldHeaderColor: tokens[themes.TokenHeader],
		reseta.FieldAccentColor: tokens[themes.TokenAccent],
		reseta.FieldPaperColor:  tokens[themes.TokenPaper],
	}
	for field, value := range colors {
		if err := entry.sess.Apply(field, value); err != nil {
			respondError(w, http.StatusInternalServerError, "theme_failed")
			return
		}
	}
	entry.setTheme(selection.Theme, selection.Variant)

	tpl, _ := entry.sess.Snapshot()
	if err := h.store.Save(r.Context(), id, tpl); err != nil {
		respondError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if err := h.store.SetTheme(r.Context(), id, selection.Theme, selection.Variant); err != nil {
		respondError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	_, signature, _, _ := entry.meta()
	sheet, err := h.renderFragment(r.Context(), RendererPreview, tpl, render.Options{Signature: signature})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"preview": string(sheet),
		"colors":  colors,
	})
}

// SetSignature stores the signature image reference used by the preview
// footer.
func (h *LetterheadHandler) SetSignature(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_form")
		return
	}
	ref := strings.TrimSpace(r.PostFormValue("signature"))

	id := r.PathValue("id")
	entry, err := h.sessions.get(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	if err := h.store.SetSignature(r.Context(), id, ref); err != nil {
		h.respondLookupError(w, err)
		return
	}
	entry.setSignature(ref)

	sheet, err := h.renderPreview(r.Context(), entry)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"preview": string(sheet)})
}

// Validate checks the whole record at once and returns every violation, the
// same messages field-by-field live validation would produce. Used before
// printing or sharing a letterhead.
func (h *LetterheadHandler) Validate(w http.ResponseWriter, r *http.Request) {
	entry, err := h.sessions.get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	tpl, _ := entry.sess.Snapshot()
	violations := validation.Violations{}
	for _, spec := range editor.ContactFields() {
		value, err := tpl.Value(spec.Name)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "validate_failed")
			return
		}
		h.validate.Check(spec.Name, value, violations)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"valid":      violations.Empty(),
		"violations": violations,
	})
}

// Delete removes a letterhead and its live session.
func (h *LetterheadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.respondLookupError(w, err)
		return
	}
	h.sessions.drop(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *LetterheadHandler) renderFragment(ctx context.Context, name string, tpl *reseta.Template, opts render.Options) ([]byte, error) {
	renderer, err := h.renderers.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, tpl, opts)
}

func (h *LetterheadHandler) renderPreview(ctx context.Context, entry *editState) ([]byte, error) {
	_, signature, _, _ := entry.meta()
	tpl, _ := entry.sess.Snapshot()
	return h.renderFragment(ctx, RendererPreview, tpl, render.Options{Signature: signature})
}

// themeCSS flattens the active palette's tokens into a :root rule so the page
// shell can color its chrome from the same source as the preview.
func (h *LetterheadHandler) themeCSS(themeName, variant string) string {
	selection, err := h.selector.Select(themeName, variant)
	if err != nil {
		return ""
	}
	cfg, err := themes.RendererConfig(selection)
	if err != nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	vars := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	var builder strings.Builder
	builder.WriteString(":root{")
	for _, name := range vars {
		builder.WriteString(name)
		builder.WriteByte(':')
		builder.WriteString(cfg.CSSVars[name])
		builder.WriteByte(';')
	}
	builder.WriteString("}")
	return builder.String()
}

func (h *LetterheadHandler) respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	respondError(w, http.StatusInternalServerError, "lookup_failed")
}
