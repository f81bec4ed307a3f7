package registry

import (
	"fmt"
	"os"
)

// Table is the generated, immutable builder table.
//
// It keeps an in-memory registry of all known builders, partitioned into the
// active table (builders with landed blocks, ordered by block count) and the
// inactive table (builders with no observed activity). Once created it must
// not be modified; it is safe for concurrent read-only access.
type Table struct {
	active         List
	other          List
	byIdentifier   map[string]Builder
	unmatchedStats []string
}

// Generate runs the full load, correlate, validate and order pipeline over the
// raw contents of the builders document and the stats document.
//
// It returns a ParseError if either document is malformed, or a
// ValidationError carrying every invariant violation found. There is no
// partial result on failure.
func Generate(buildersJSON, statsJSON []byte) (*Table, error) {
	return generate("builders.json", buildersJSON, "builders_stats.json", statsJSON)
}

// GenerateFromFiles runs the pipeline over alternate source document paths.
// This allows test fixtures and private builder lists to be generated the same
// way as the default data.
func GenerateFromFiles(buildersPath, statsPath string) (*Table, error) {
	buildersJSON, err := os.ReadFile(buildersPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read builders document: %w", err)
	}

	statsJSON, err := os.ReadFile(statsPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read stats document: %w", err)
	}

	return generate(buildersPath, buildersJSON, statsPath, statsJSON)
}

// MustGenerate is like Generate but panics on error. It is intended for
// static initializers over embedded source documents that are validated in CI.
func MustGenerate(buildersJSON, statsJSON []byte) *Table {
	table, err := Generate(buildersJSON, statsJSON)
	if err != nil {
		panic(fmt.Sprintf("mev-builders: cannot generate builder table: %v", err))
	}

	return table
}

func generate(buildersDoc string, buildersJSON []byte, statsDoc string, statsJSON []byte) (*Table, error) {
	rawBuilders, err := parseBuilders(buildersDoc, buildersJSON)
	if err != nil {
		return nil, err
	}

	stats, err := parseStats(statsDoc, statsJSON)
	if err != nil {
		return nil, err
	}

	builders, unmatched := correlate(rawBuilders, stats)

	if err := validate(builders); err != nil {
		return nil, err
	}

	active, other := order(builders)

	byIdentifier := make(map[string]Builder, len(builders))
	for _, builder := range builders {
		byIdentifier[builder.Identifier] = builder
	}

	return &Table{
		active:         active,
		other:          other,
		byIdentifier:   byIdentifier,
		unmatchedStats: unmatched,
	}, nil
}

// Active returns the builders with at least one landed block, ordered by
// block count descending (ties broken by identifier ascending).
func (t *Table) Active() List {
	return t.active
}

// Other returns the builders with no landed blocks over the observation
// window, ordered by identifier ascending.
func (t *Table) Other() List {
	return t.other
}

// All returns the active builders followed by the inactive ones. Together they
// contain every valid builder exactly once.
func (t *Table) All() List {
	all := make(List, 0, len(t.active)+len(t.other))
	all = append(all, t.active...)
	all = append(all, t.other...)

	return all
}

// Get returns the builder with the given identifier.
func (t *Table) Get(identifier string) (Builder, bool) {
	builder, ok := t.byIdentifier[identifier]
	return builder, ok
}

// Len returns the total number of builders in the table.
func (t *Table) Len() int {
	return len(t.active) + len(t.other)
}

// UnmatchedStats returns the stats document keys that did not correspond to
// any builder's extra data, sorted ascending. A non-empty result does not make
// the table invalid, but it usually means the source documents drifted apart.
func (t *Table) UnmatchedStats() []string {
	return t.unmatchedStats
}
