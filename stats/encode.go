package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// EncodeStats renders the flat statistics map as the statistics document.
//
// Keys are ordered by descending block count (ties by key) rather than
// alphabetically, so that a refreshed document diffs cleanly against the
// previous window.
func EncodeStats(flat map[string]uint64) ([]byte, error) {
	type entry struct {
		key    string
		blocks uint64
	}

	entries := make([]entry, 0, len(flat))
	for key, blocks := range flat {
		entries = append(entries, entry{key: key, blocks: blocks})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].blocks != entries[j].blocks {
			return entries[i].blocks > entries[j].blocks
		}
		return entries[i].key < entries[j].key
	})

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(&buf, "  %s: %d", key, e.blocks)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// WriteStatsFile writes the statistics document to the given path.
func WriteStatsFile(path string, flat map[string]uint64) error {
	data, err := EncodeStats(flat)
	if err != nil {
		return fmt.Errorf("could not encode stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write stats file: %w", err)
	}

	return nil
}
