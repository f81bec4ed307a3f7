// Package stats aggregates per-builder block counts from public block
// production data and materializes the statistics document consumed by the
// registry pipeline.
//
// The aggregation is glue around the core table generation: it fetches daily
// builder statistics from relayscan.io, sums them over a date range keyed by
// the extra data each builder puts into its blocks, and writes the resulting
// flat map ordered by descending block count so refreshes produce stable
// diffs.
package stats

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flashbots/mev-builders/config"
)

// Opts configure a stats Aggregator.
type Opts struct {
	Log     *logrus.Entry
	BaseURL string
	Timeout time.Duration
}

// Aggregator fetches and merges daily builder statistics.
type Aggregator struct {
	log     *logrus.Entry
	baseURL string
	client  http.Client
}

// NewAggregator creates an Aggregator. Zero options fall back to the
// environment-configured defaults.
func NewAggregator(opts Opts) *Aggregator {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = config.StatsBaseURL
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Duration(config.StatsRequestTimeoutMs) * time.Millisecond
	}

	return &Aggregator{
		log:     log,
		baseURL: baseURL,
		client:  http.Client{Timeout: timeout},
	}
}

// BuilderStats is the aggregated activity of one parent builder, with the
// per-extra-data breakdown of its children.
type BuilderStats struct {
	Name     string
	Blocks   uint64
	Children []ChildStats
}

// ChildStats is the aggregated activity of one child builder.
type ChildStats struct {
	Name   string
	Blocks uint64
}

// Result is the outcome of aggregating a date range.
type Result struct {
	// Flat maps every observed extra data string to its total block count.
	// This is the content of the statistics document.
	Flat map[string]uint64
	// Builders is the hierarchical per-builder breakdown, ordered by blocks
	// descending, for display.
	Builders []BuilderStats
	// Days is the number of days that were fetched successfully.
	Days int
}

// AggregateRange fetches every date and merges the daily statistics. Days that
// fail to fetch are logged and skipped; it is an error if no day succeeds.
func (a *Aggregator) AggregateRange(ctx context.Context, dates []string) (*Result, error) {
	flat := make(map[string]uint64)
	mergedParents := make(map[string]uint64)
	mergedChildren := make(map[string]map[string]uint64)
	fetched := 0

	for _, date := range dates {
		day, err := a.fetchDay(ctx, date)
		if err != nil {
			a.log.WithError(err).WithField("date", date).Error("skipping day, could not fetch stats")
			continue
		}
		fetched++

		for _, builder := range day.Builders {
			name := trimmed(builder.Info.ExtraData)
			flat[name] += builder.Info.NumBlocks
			mergedParents[name] += builder.Info.NumBlocks

			for _, child := range builder.Children {
				childName := trimmed(child.ExtraData)
				flat[childName] += child.NumBlocks

				if mergedChildren[name] == nil {
					mergedChildren[name] = make(map[string]uint64)
				}
				mergedChildren[name][childName] += child.NumBlocks
			}
		}

		a.log.WithFields(logrus.Fields{
			"date":     date,
			"builders": len(day.Builders),
		}).Info("fetched daily stats")
	}

	if fetched == 0 {
		return nil, errors.New("no stats found for the given date range")
	}

	return &Result{
		Flat:     flat,
		Builders: buildHierarchy(mergedParents, mergedChildren),
		Days:     fetched,
	}, nil
}

// TotalBlocks returns the block count summed over all parent builders.
func (r *Result) TotalBlocks() uint64 {
	var total uint64
	for _, builder := range r.Builders {
		total += builder.Blocks
	}

	return total
}

func buildHierarchy(parents map[string]uint64, children map[string]map[string]uint64) []BuilderStats {
	builders := make([]BuilderStats, 0, len(parents))
	for name, blocks := range parents {
		builder := BuilderStats{Name: name, Blocks: blocks}

		for childName, childBlocks := range children[name] {
			builder.Children = append(builder.Children, ChildStats{Name: childName, Blocks: childBlocks})
		}
		sort.Slice(builder.Children, func(i, j int) bool {
			if builder.Children[i].Blocks != builder.Children[j].Blocks {
				return builder.Children[i].Blocks > builder.Children[j].Blocks
			}
			return builder.Children[i].Name < builder.Children[j].Name
		})

		builders = append(builders, builder)
	}

	sort.Slice(builders, func(i, j int) bool {
		if builders[i].Blocks != builders[j].Blocks {
			return builders[i].Blocks > builders[j].Blocks
		}
		return builders[i].Name < builders[j].Name
	})

	return builders
}

func trimmed(extraData string) string {
	return strings.TrimSpace(extraData)
}
