package registry

import (
	"strings"
	"testing"

	"quotemaster/internal/flight"
)

// fakeFormat matches when the text contains its token and emits legs
// carrying its name.
type fakeFormat struct {
	name     string
	priority int
	token    string
	emit     int
}

func (f *fakeFormat) Name() string          { return f.name }
func (f *fakeFormat) Priority() int         { return f.priority }
func (f *fakeFormat) Signature(text string) bool {
	return f.token == "" || strings.Contains(text, f.token)
}

func (f *fakeFormat) Extract(text string) []flight.Leg {
	legs := make([]flight.Leg, 0, f.emit)
	for i := 0; i < f.emit; i++ {
		legs = append(legs, flight.Leg{Flight: f.name})
	}
	return legs
}

func TestDispatchPriorityOrder(t *testing.T) {
	r := New()
	// Registered out of order; Sort must put "first" ahead.
	r.Register(&fakeFormat{name: "second", priority: 20, token: "x", emit: 1})
	r.Register(&fakeFormat{name: "first", priority: 10, token: "x", emit: 1})
	r.Sort()

	legs, name := r.Dispatch("x")
	if name != "first" {
		t.Errorf("winning format = %q, want %q", name, "first")
	}
	if len(legs) != 1 || legs[0].Flight != "first" {
		t.Errorf("legs = %+v", legs)
	}
}

func TestDispatchFallsThroughEmptyExtraction(t *testing.T) {
	r := New()
	// Signature matches but extraction is empty; the next format must win.
	r.Register(&fakeFormat{name: "eager", priority: 10, token: "x", emit: 0})
	r.Register(&fakeFormat{name: "steady", priority: 20, token: "x", emit: 2})
	r.Sort()

	legs, name := r.Dispatch("x")
	if name != "steady" {
		t.Errorf("winning format = %q, want %q", name, "steady")
	}
	if len(legs) != 2 {
		t.Errorf("len(legs) = %d, want 2", len(legs))
	}
}

func TestDispatchSkipsNonMatchingSignature(t *testing.T) {
	r := New()
	r.Register(&fakeFormat{name: "picky", priority: 10, token: "absent", emit: 1})
	r.Register(&fakeFormat{name: "loose", priority: 20, token: "x", emit: 1})
	r.Sort()

	_, name := r.Dispatch("x")
	if name != "loose" {
		t.Errorf("winning format = %q, want %q", name, "loose")
	}
}

func TestDispatchFallbackRunsLast(t *testing.T) {
	r := New()
	r.Register(&fakeFormat{name: "specialized", priority: 10, token: "absent", emit: 1})
	r.RegisterFallback(&fakeFormat{name: "fallback", priority: 100, token: "", emit: 1})
	r.Sort()

	legs, name := r.Dispatch("anything")
	if name != "fallback" {
		t.Errorf("winning format = %q, want %q", name, "fallback")
	}
	if len(legs) != 1 {
		t.Errorf("len(legs) = %d, want 1", len(legs))
	}
}

func TestDispatchNeverNil(t *testing.T) {
	r := New()
	r.RegisterFallback(&fakeFormat{name: "fallback", priority: 100, token: "", emit: 0})
	r.Sort()

	legs, _ := r.Dispatch("nothing recognizable")
	if legs == nil {
		t.Fatal("Dispatch returned nil slice")
	}
	if len(legs) != 0 {
		t.Errorf("len(legs) = %d, want 0", len(legs))
	}
}

func TestParseDropsFormatName(t *testing.T) {
	r := New()
	r.Register(&fakeFormat{name: "only", priority: 10, token: "x", emit: 1})
	r.Sort()

	legs := r.Parse("x")
	if len(legs) != 1 || legs[0].Flight != "only" {
		t.Errorf("legs = %+v", legs)
	}
}

func TestFormatCount(t *testing.T) {
	r := New()
	r.Register(&fakeFormat{name: "a", priority: 1})
	r.Register(&fakeFormat{name: "b", priority: 2})
	r.RegisterFallback(&fakeFormat{name: "c", priority: 3})

	if got := r.FormatCount(); got != 3 {
		t.Errorf("FormatCount() = %d, want 3", got)
	}
}
