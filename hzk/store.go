package hzk

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/dotmatrix/gb"
)

// Source fetches the raw bytes of a font file. It is invoked at most once
// per load attempt and must honor ctx cancellation. Sources typically
// wrap a file read or an HTTP fetch.
type Source func(ctx context.Context) ([]byte, error)

// store load states. Loaded is terminal; loadFailed is retryable.
type loadState int

const (
	stateUnloaded loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// GlyphStore owns one font variant: its descriptor, a deferred byte
// source, and — once loading succeeded — the immutable font blob. Glyph
// extraction is zero-copy: callers receive sub-slices of the loaded blob
// and must treat them as read-only.
//
// A store is safe for concurrent use. Concurrent Load calls collapse to a
// single in-flight fetch; glyph lookups never observe a partially
// populated buffer because the buffer is published only after the fetch
// fully completed.
type GlyphStore struct {
	desc   FontDescriptor
	enc    *gb.Encoder
	source Source

	mu       sync.Mutex
	state    loadState
	data     []byte
	loadErr  error
	inflight chan struct{} // closed when the current load attempt settles
}

// NewGlyphStore creates an unloaded store for one font variant.
// enc may be nil if CharGlyph is never used.
func NewGlyphStore(desc FontDescriptor, enc *gb.Encoder, source Source) *GlyphStore {
	return &GlyphStore{desc: desc, enc: enc, source: source}
}

// Descriptor returns the font variant parameters.
func (s *GlyphStore) Descriptor() FontDescriptor {
	return s.desc
}

// Loaded reports whether font data is available for glyph extraction.
func (s *GlyphStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateLoaded
}

// Load fetches the font data through the store's source. It is idempotent
// after success: repeated calls return nil without a second fetch. After
// a failure the store remains retryable. If a load is already in flight,
// Load waits for its outcome instead of issuing a duplicate fetch.
//
// Cancellation of ctx while this call owns the fetch leaves the store in
// the failed (retryable) state, never stuck loading.
func (s *GlyphStore) Load(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case stateLoaded:
		s.mu.Unlock()
		return nil
	case stateLoading:
		done := s.inflight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state == stateLoaded {
			return nil
		}
		return s.loadErr
	}
	// unloaded or failed: this call owns the fetch
	s.state = stateLoading
	done := make(chan struct{})
	s.inflight = done
	source := s.source
	s.mu.Unlock()

	data, err := fetch(ctx, source)
	if err == nil {
		err = validateFontData(s.desc, data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(done)
	if err != nil {
		s.state = stateFailed
		s.loadErr = &LoadError{Font: s.desc.Name, Err: err}
		tracer().Errorf(s.loadErr.Error())
		return s.loadErr
	}
	s.data = data
	s.state = stateLoaded
	s.loadErr = nil
	tracer().Infof("font %s loaded, %d bytes (%d glyph cells)",
		s.desc, len(data), len(data)/s.desc.BytesPerGlyph())
	return nil
}

func fetch(ctx context.Context, source Source) ([]byte, error) {
	if source == nil {
		return nil, errors.New("store has no byte source")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return source(ctx)
}

// LoadBytes installs already-fetched font data directly, bypassing the
// source. Like Load it is a no-op on an already loaded store.
func (s *GlyphStore) LoadBytes(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateLoaded {
		return nil
	}
	if s.state == stateLoading {
		return &LoadError{Font: s.desc.Name, Err: errors.New("load already in flight")}
	}
	if err := validateFontData(s.desc, data); err != nil {
		s.state = stateFailed
		s.loadErr = &LoadError{Font: s.desc.Name, Err: err}
		return s.loadErr
	}
	s.data = data
	s.state = stateLoaded
	s.loadErr = nil
	return nil
}

func validateFontData(d FontDescriptor, data []byte) error {
	if len(data) < d.BytesPerGlyph() {
		return fmt.Errorf("font data too short: %d bytes, need at least %d",
			len(data), d.BytesPerGlyph())
	}
	if len(data)%d.BytesPerGlyph() != 0 {
		// A trailing partial cell usually means a truncated download.
		// Extraction stays safe either way, so this is only a warning.
		tracer().Infof("font %s: %d bytes is not a whole number of glyph cells", d, len(data))
	}
	return nil
}

// Glyph returns the packed bitmap bytes for a GB2312 code pair as a
// read-only view into the loaded font data. Possible failures are
// ErrNotLoaded, ErrInvalidCode and ErrOutOfRange; Glyph never panics on
// malformed input.
func (s *GlyphStore) Glyph(code gb.Code) ([]byte, error) {
	s.mu.Lock()
	data, state := s.data, s.state
	s.mu.Unlock()
	if state != stateLoaded {
		return nil, ErrNotLoaded
	}
	offset, err := GlyphOffset(s.desc, code)
	if err != nil {
		return nil, err
	}
	return view(data, offset, s.desc.BytesPerGlyph())
}

// CharGlyph composes GB2312 encoding and glyph extraction for a single
// code point. It additionally surfaces gb.ErrUnencodable.
func (s *GlyphStore) CharGlyph(r rune) ([]byte, error) {
	if s.enc == nil {
		return nil, gb.ErrUnencodable
	}
	code, err := s.enc.Encode(r)
	if err != nil {
		return nil, err
	}
	return s.Glyph(code)
}

// view returns n bytes of data at offset, or ErrOutOfRange if the span
// does not fit. The slice aliases data; callers must not mutate it.
func view(data []byte, offset, n int) ([]byte, error) {
	if offset < 0 || n <= 0 || offset+n > len(data) {
		return nil, fmt.Errorf("%w: [%d,%d) in %d bytes", ErrOutOfRange, offset, offset+n, len(data))
	}
	return data[offset : offset+n], nil
}
