package handlers

import (
	"context"
	"sync"

	"github.com/resetalabs/resetapad/internal/store"
	"github.com/resetalabs/resetapad/pkg/session"
	"github.com/resetalabs/resetapad/pkg/validation"
)

// editState is the live editing state for one letterhead: the field session
// plus row attributes the preview needs that are not template fields. The
// session guards the template itself; mu guards the sibling fields, which
// concurrent requests for the same letterhead read and write.
type editState struct {
	sess *session.Session

	mu        sync.RWMutex
	name      string
	signature string
	theme     string
	variant   string
}

// meta returns a consistent snapshot of the non-template attributes.
func (e *editState) meta() (name, signature, theme, variant string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name, e.signature, e.theme, e.variant
}

func (e *editState) setTheme(name, variant string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.theme = name
	e.variant = variant
}

func (e *editState) setSignature(ref string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.signature = ref
}

// sessionCache lazily materializes edit sessions from stored rows so repeated
// field updates reuse one session per letterhead.
type sessionCache struct {
	mu       sync.Mutex
	store    *store.Store
	validate *validation.Validator
	entries  map[string]*editState
}

func newSessionCache(st *store.Store, validate *validation.Validator) *sessionCache {
	return &sessionCache{
		store:    st,
		validate: validate,
		entries:  make(map[string]*editState),
	}
}

func (c *sessionCache) get(ctx context.Context, id string) (*editState, error) {
	c.mu.Lock()
	if entry, ok := c.entries[id]; ok {
		c.mu.Unlock()
		return entry, nil
	}
	c.mu.Unlock()

	row, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl, err := row.Template()
	if err != nil {
		return nil, err
	}

	entry := &editState{
		sess: session.New(
			session.WithTemplate(tpl),
			session.WithValidator(c.validate.ValidateField),
		),
		name:      row.Name,
		signature: row.SignatureRef,
		theme:     row.Theme,
		variant:   row.ThemeVariant,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[id]; ok {
		return existing, nil
	}
	c.entries[id] = entry
	return entry, nil
}

func (c *sessionCache) drop(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}
