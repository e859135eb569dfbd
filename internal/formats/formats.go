// Package formats imports all format packages to trigger their init()
// registration. Import this package for side effects only.
package formats

import (
	// Import all format packages to register them with the registry.
	_ "quotemaster/internal/formats/agent"
	_ "quotemaster/internal/formats/booking"
	_ "quotemaster/internal/formats/gds"
	_ "quotemaster/internal/formats/generic"
	_ "quotemaster/internal/formats/itin"
)
