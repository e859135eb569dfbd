package citytax

import (
	"sort"
	"strings"
	"sync"
)

// Table is the live rule set: the builtin rules plus admin edits. Safe for
// concurrent use.
type Table struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewTable returns a Table seeded with the builtin rules.
func NewTable() *Table {
	rules := make(map[string]Rule, len(builtinRules))
	for k, v := range builtinRules {
		rules[k] = v
	}
	return &Table{rules: rules}
}

// Find resolves a free-text city name to its rule. Lookup order: exact
// alias, alias substring in either direction, then direct rule city name.
func (t *Table) Find(city string) (string, Rule, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	normalized := strings.ToLower(strings.TrimSpace(city))
	if normalized == "" {
		return "", Rule{}, false
	}

	for _, a := range cityAliases {
		if a.name == normalized {
			if r, ok := t.rules[a.key]; ok {
				return a.key, r, true
			}
		}
	}
	for _, a := range cityAliases {
		if strings.Contains(normalized, a.name) || strings.Contains(a.name, normalized) {
			if r, ok := t.rules[a.key]; ok {
				return a.key, r, true
			}
		}
	}

	// Admin-added rules have no alias entries; match on the city name.
	for key, r := range t.rules {
		if strings.ToLower(r.City) == normalized {
			return key, r, true
		}
	}
	return "", Rule{}, false
}

// Get returns the rule stored under a key.
func (t *Table) Get(key string) (Rule, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.rules[key]
	return r, ok
}

// Set stores or replaces a rule.
func (t *Table) Set(key string, r Rule) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rules[key] = r
}

// Delete removes a rule. Reports whether it existed.
func (t *Table) Delete(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.rules[key]
	delete(t.rules, key)
	return ok
}

// All returns every rule keyed by identifier, as a copy.
func (t *Table) All() map[string]Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]Rule, len(t.rules))
	for k, v := range t.rules {
		out[k] = v
	}
	return out
}

// Cities lists the names a lookup will resolve, for autocomplete: every
// rule's city name plus every alias, capitalized, deduplicated and sorted.
func (t *Table) Cities() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]bool, len(t.rules)+len(cityAliases))
	out := make([]string, 0, len(t.rules)+len(cityAliases))
	for _, r := range t.rules {
		if !seen[r.City] {
			seen[r.City] = true
			out = append(out, r.City)
		}
	}
	for _, a := range cityAliases {
		name := strings.ToUpper(a.name[:1]) + a.name[1:]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
