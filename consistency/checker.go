// Package consistency cross-checks the builder registry document against the
// block-count statistics document.
//
// The check is informational: it reports statistics entries that no builder
// claims, builders whose extra data never shows up in the statistics, and
// builders that cannot be matched at all because they have no extra data. It
// never blocks table generation; it exists so that source-data drift is
// spotted when the statistics are refreshed.
package consistency

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// builderDoc is the subset of a builder entry the checker cares about. The
// decode is deliberately lenient; strict validation is the registry's job.
type builderDoc struct {
	Name       string  `json:"name"`
	Identifier string  `json:"identifier"`
	ExtraData  *string `json:"extra_data"`
}

// StatsEntry is a statistics entry with no matching builder.
type StatsEntry struct {
	ExtraData string
	Blocks    uint64
}

// BuilderInfo identifies a builder in the report.
type BuilderInfo struct {
	Name       string
	Identifier string
	ExtraData  string
}

// Report is the outcome of a consistency check.
type Report struct {
	// StatsNotInBuilders lists statistics entries no builder claims,
	// ordered by extra data.
	StatsNotInBuilders []StatsEntry
	// BuildersNotInStats lists builders whose extra data has no statistics
	// entry, in document order.
	BuildersNotInStats []BuilderInfo
	// BuildersWithoutExtraData lists builders that cannot be matched with
	// statistics at all, in document order.
	BuildersWithoutExtraData []BuilderInfo
}

// HasIssues returns true if the two documents disagree. Builders without
// extra data are expected and do not count as an issue.
func (r *Report) HasIssues() bool {
	return len(r.StatsNotInBuilders) > 0 || len(r.BuildersNotInStats) > 0
}

// Check loads both source documents and reports every mismatch between them.
func Check(buildersPath, statsPath string) (*Report, error) {
	buildersJSON, err := os.ReadFile(buildersPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read builders document: %w", err)
	}

	statsJSON, err := os.ReadFile(statsPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read stats document: %w", err)
	}

	return CheckContents(buildersJSON, statsJSON)
}

// CheckContents reports every mismatch between the raw contents of the two
// source documents.
func CheckContents(buildersJSON, statsJSON []byte) (*Report, error) {
	var builders []builderDoc
	if err := json.Unmarshal(buildersJSON, &builders); err != nil {
		return nil, fmt.Errorf("cannot parse builders document: %w", err)
	}

	var stats map[string]uint64
	if err := json.Unmarshal(statsJSON, &stats); err != nil {
		return nil, fmt.Errorf("cannot parse stats document: %w", err)
	}

	report := &Report{}
	claimed := make(map[string]bool, len(builders))

	for _, builder := range builders {
		extraData := ""
		if builder.ExtraData != nil {
			extraData = strings.TrimSpace(*builder.ExtraData)
		}

		if extraData == "" {
			report.BuildersWithoutExtraData = append(report.BuildersWithoutExtraData, BuilderInfo{
				Name:       builder.Name,
				Identifier: builder.Identifier,
			})
			continue
		}

		claimed[extraData] = true

		if _, ok := stats[extraData]; !ok {
			report.BuildersNotInStats = append(report.BuildersNotInStats, BuilderInfo{
				Name:       builder.Name,
				Identifier: builder.Identifier,
				ExtraData:  extraData,
			})
		}
	}

	for extraData, blocks := range stats {
		if !claimed[extraData] {
			report.StatsNotInBuilders = append(report.StatsNotInBuilders, StatsEntry{
				ExtraData: extraData,
				Blocks:    blocks,
			})
		}
	}
	sort.Slice(report.StatsNotInBuilders, func(i, j int) bool {
		return report.StatsNotInBuilders[i].ExtraData < report.StatsNotInBuilders[j].ExtraData
	})

	return report, nil
}
