// Package mevbuilders exposes a validated, deterministically ordered table of
// known MEV block builders, generated once from the embedded registry and
// block-count statistics documents.
//
// The table is built at package initialization and is immutable afterwards;
// it is safe for concurrent read-only access from any number of goroutines.
// The statistics cover the most recent aggregation window (7 days by default)
// and are refreshed by the mev-builders stats tool; regenerating them only
// changes the ordering, never the API.
//
// To generate a table from alternate source documents (e.g. a private builder
// list), use the registry package directly.
package mevbuilders

import (
	_ "embed"

	"github.com/flashbots/mev-builders/registry"
)

// Builder represents a known MEV block builder with its details.
type Builder = registry.Builder

// Signing indicates if a builder requires signing for bundles.
type Signing = registry.Signing

//go:embed data/builders.json
var buildersJSON []byte

//go:embed data/builders_stats.json
var statsJSON []byte

// table is generated exactly once; the embedded documents are validated in CI,
// so a failure here means the shipped data is broken.
var table = registry.MustGenerate(buildersJSON, statsJSON)

// Active returns the builders with at least one landed block over the
// observation window, ordered by block count descending.
func Active() registry.List {
	return table.Active()
}

// Other returns the builders with no landed blocks over the observation
// window, ordered by identifier.
func Other() registry.List {
	return table.Other()
}

// All returns every known builder: the active ones first, then the rest.
func All() registry.List {
	return table.All()
}

// Get returns the builder with the given identifier.
func Get(identifier string) (Builder, bool) {
	return table.Get(identifier)
}

// RequiresExtraHandling returns true if the builder with the given identifier
// needs non-standard client configuration (e.g. custom TLS trust or a
// registered account). Unknown identifiers return false.
func RequiresExtraHandling(identifier string) bool {
	builder, ok := table.Get(identifier)
	return ok && builder.RequiresExtraHandling()
}
