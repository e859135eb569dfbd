// Package storage persists admin-edited city tax rules and archives parse
// requests for later analysis.
package storage

import (
	"context"

	"quotemaster/internal/citytax"
)

// TaxStore persists the admin-editable tax rule overrides. The in-memory
// table remains authoritative at runtime; the store is the durable copy
// loaded at startup.
type TaxStore interface {
	// All loads every stored rule keyed by identifier.
	All(ctx context.Context) (map[string]citytax.Rule, error)

	// Put stores or replaces a rule.
	Put(ctx context.Context, key string, rule citytax.Rule) error

	// Delete removes a rule. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
