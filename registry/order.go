package registry

import "sort"

// order partitions the validated set into the active table (at least one
// landed block, sorted by blocks descending) and the inactive table (zero
// blocks, sorted by identifier ascending). Ties in the active table are broken
// by ascending identifier so that identical inputs always produce an identical
// ordering.
func order(builders []Builder) (active, other List) {
	for _, builder := range builders {
		if builder.Blocks >= 1 {
			active = append(active, builder)
		} else {
			other = append(other, builder)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Blocks != active[j].Blocks {
			return active[i].Blocks > active[j].Blocks
		}
		return active[i].Identifier < active[j].Identifier
	})

	sort.SliceStable(other, func(i, j int) bool {
		return other[i].Identifier < other[j].Identifier
	})

	return active, other
}
