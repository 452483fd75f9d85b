package catalog

import (
	"fmt"

	_ "embed"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// Default returns the catalog shipped with the binary: the movie
// statistics questions plus the database schema question.
func Default() *Catalog {
	c, err := Parse(defaultCatalogJSON)
	if err != nil {
		// The embedded catalog is part of the build; failing to parse it
		// is a programming error, not a runtime condition.
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}
