// Package regtest provides fixture helpers for builder registry tests.
package regtest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BuilderDoc is a mutable builder entry used to assemble source documents in
// tests. Fields set to nil are omitted from the JSON.
type BuilderDoc struct {
	Name                  *string `json:"name,omitempty"`
	Identifier            *string `json:"identifier,omitempty"`
	Website               *string `json:"website,omitempty"`
	SearcherRPC           *string `json:"searcher_rpc,omitempty"`
	MevShareRPC           *string `json:"mev_share_rpc,omitempty"`
	ExtraData             *string `json:"extra_data,omitempty"`
	Signing               *string `json:"signing,omitempty"`
	AccountRequired       *bool   `json:"account_required,omitempty"`
	RequiresExtraHandling *bool   `json:"requires_extra_handling,omitempty"`
}

// ValidBuilderDoc returns a fully populated builder entry derived from the
// given identifier, so that multiple entries never collide on unique fields.
func ValidBuilderDoc(identifier string) BuilderDoc {
	return BuilderDoc{
		Name:            Str("Builder " + identifier),
		Identifier:      Str(identifier),
		Website:         Str("https://" + identifier + ".test"),
		SearcherRPC:     Str("https://rpc." + identifier + ".test"),
		Signing:         Str("NotSupported"),
		AccountRequired: Bool(false),
	}
}

// ValidBuilderDocWithExtraData is like ValidBuilderDoc with an extra data tag.
func ValidBuilderDocWithExtraData(identifier, extraData string) BuilderDoc {
	doc := ValidBuilderDoc(identifier)
	doc.ExtraData = Str(extraData)

	return doc
}

// BuildersJSON marshals builder entries into a builders document.
func BuildersJSON(tb testing.TB, builders ...BuilderDoc) []byte {
	tb.Helper()

	data, err := json.Marshal(builders)
	require.NoError(tb, err)

	return data
}

// StatsJSON marshals a stats map into a stats document.
func StatsJSON(tb testing.TB, stats map[string]uint64) []byte {
	tb.Helper()

	if stats == nil {
		stats = map[string]uint64{}
	}

	data, err := json.Marshal(stats)
	require.NoError(tb, err)

	return data
}

// Str returns a pointer to the given string.
func Str(s string) *string { return &s }

// Bool returns a pointer to the given bool.
func Bool(b bool) *bool { return &b }
