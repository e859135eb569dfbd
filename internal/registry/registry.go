// Package registry dispatches pasted itinerary text to the format
// extractors, trying signatures in a fixed priority order.
package registry

import (
	"sort"
	"sync"

	"quotemaster/internal/flight"
)

// Format is implemented by each extraction strategy.
type Format interface {
	// Name returns the format's unique identifier.
	Name() string

	// Priority determines the order formats are tried. Lower number =
	// checked first. The most rigid signatures get the lowest priorities so
	// looser patterns cannot shadow them.
	Priority() int

	// Signature performs a cheap whole-text check before the full per-line
	// extraction pass. Returns true if the text MIGHT be in this format.
	Signature(text string) bool

	// Extract produces zero or more legs from the text. Unmatched lines are
	// skipped and partially-captured legs are acceptable.
	Extract(text string) []flight.Leg
}

// Registry holds the registered formats organised for ordered dispatch.
type Registry struct {
	mu       sync.RWMutex
	formats  []Format
	fallback []Format
	sorted   bool
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{}
}

// Global default registry.
var defaultRegistry = New()

// Default returns the global registry instance.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a format to the default registry.
// Called during init() in each format package.
func Register(f Format) {
	defaultRegistry.Register(f)
}

// RegisterFallback adds a format that runs when no signature matched or
// every matching extractor came up empty.
func RegisterFallback(f Format) {
	defaultRegistry.RegisterFallback(f)
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats = append(r.formats, f)
	r.sorted = false
}

// RegisterFallback adds a fallback format.
func (r *Registry) RegisterFallback(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = append(r.fallback, f)
	r.sorted = false
}

// Sort orders formats by priority. Call before dispatching; without it
// formats run in registration order.
func (r *Registry) Sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	sort.SliceStable(r.formats, func(i, j int) bool {
		return r.formats[i].Priority() < r.formats[j].Priority()
	})
	sort.SliceStable(r.fallback, func(i, j int) bool {
		return r.fallback[i].Priority() < r.fallback[j].Priority()
	})
	r.sorted = true
}

// Dispatch runs formats in priority order and returns the first non-empty
// extraction together with the winning format's name. A matching signature
// whose extractor yields nothing falls through to the next format; the
// fallback formats run last. The returned slice is never nil.
func (r *Registry) Dispatch(text string) ([]flight.Leg, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.formats {
		if !f.Signature(text) {
			continue
		}
		if legs := f.Extract(text); len(legs) > 0 {
			return legs, f.Name()
		}
	}

	name := ""
	for _, f := range r.fallback {
		name = f.Name()
		if legs := f.Extract(text); len(legs) > 0 {
			return legs, f.Name()
		}
	}

	return []flight.Leg{}, name
}

// Parse is Dispatch without the format name.
func (r *Registry) Parse(text string) []flight.Leg {
	legs, _ := r.Dispatch(text)
	return legs
}

// FormatCount returns the number of registered formats including fallbacks.
func (r *Registry) FormatCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.formats) + len(r.fallback)
}
