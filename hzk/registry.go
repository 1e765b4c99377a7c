package hzk

import (
	"context"
	"fmt"
	"sync"

	"github.com/npillmayer/dotmatrix/gb"
)

// Registry holds named glyph stores and tracks the active selection. A
// registry is an explicit value handed to whoever needs it; there is no
// package-level singleton. The current-selection pointer is the only
// state shared across stores and is mutated exclusively by SetCurrent.
type Registry struct {
	enc *gb.Encoder

	mu      sync.Mutex
	stores  map[string]*GlyphStore
	names   []string // registration order
	current *GlyphStore
}

// NewRegistry creates an empty registry. All stores registered with it
// share enc for their CharGlyph convenience lookups.
func NewRegistry(enc *gb.Encoder) *Registry {
	return &Registry{enc: enc, stores: make(map[string]*GlyphStore)}
}

// Encoder returns the shared GB2312 encoder.
func (reg *Registry) Encoder() *gb.Encoder {
	return reg.enc
}

// Register adds an unloaded store for a font variant under desc.Name.
// Duplicate names are rejected.
func (reg *Registry) Register(desc FontDescriptor, source Source) (*GlyphStore, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.stores[desc.Name]; exists {
		return nil, fmt.Errorf("font %q already registered", desc.Name)
	}
	store := NewGlyphStore(desc, reg.enc, source)
	reg.stores[desc.Name] = store
	reg.names = append(reg.names, desc.Name)
	tracer().Debugf("registered font %s", desc)
	return store, nil
}

// Get returns the store registered under name, or nil.
func (reg *Registry) Get(name string) *GlyphStore {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.stores[name]
}

// Names returns the registered font names in registration order.
func (reg *Registry) Names() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	names := make([]string, len(reg.names))
	copy(names, reg.names)
	return names
}

// SetCurrent makes the named font the active selection, loading it first
// if necessary. On a failed load the previous selection stays active.
func (reg *Registry) SetCurrent(ctx context.Context, name string) error {
	reg.mu.Lock()
	store := reg.stores[name]
	reg.mu.Unlock()
	if store == nil {
		return fmt.Errorf("font %q not registered", name)
	}
	if err := store.Load(ctx); err != nil {
		return err
	}
	reg.mu.Lock()
	reg.current = store
	reg.mu.Unlock()
	tracer().Infof("current font is %s", store.Descriptor())
	return nil
}

// Current returns the active store, or nil if none has been selected.
func (reg *Registry) Current() *GlyphStore {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.current
}
