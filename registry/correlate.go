package registry

import "sort"

// correlate joins the raw builders with the stats map by exact extra-data
// match. Builders with no extra data, or whose extra data is absent from the
// stats, get zero blocks. Stats entries with no matching builder are returned
// as unmatched; they never fail generation, but are surfaced to the
// consistency tooling.
//
// The join is purely by string equality. Ambiguous attribution (two builders
// claiming the same extra data) is not resolved here; the validator rejects
// it so it cannot pass quietly.
func correlate(rawBuilders []rawBuilder, stats map[string]uint64) (builders []Builder, unmatched []string) {
	claimed := make(map[string]bool, len(rawBuilders))

	builders = make([]Builder, 0, len(rawBuilders))
	for _, raw := range rawBuilders {
		builder := raw.toBuilder()
		if builder.ExtraData != "" {
			builder.Blocks = stats[builder.ExtraData]
			claimed[builder.ExtraData] = true
		}
		builders = append(builders, builder)
	}

	for key := range stats {
		if !claimed[key] {
			unmatched = append(unmatched, key)
		}
	}
	sort.Strings(unmatched)

	return builders, unmatched
}
