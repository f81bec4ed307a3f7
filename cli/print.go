package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/flashbots/mev-builders/consistency"
	"github.com/flashbots/mev-builders/registry"
	"github.com/flashbots/mev-builders/stats"
)

func printBuilders(w io.Writer, active, other registry.List) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Name", "Identifier", "Blocks", "Signing", "Searcher RPC"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	rank := 0
	for _, builder := range active {
		rank++
		table.Append(builderRow(rank, builder))
	}
	for _, builder := range other {
		rank++
		table.Append(builderRow(rank, builder))
	}

	table.Render()
}

func builderRow(rank int, builder registry.Builder) []string {
	return []string{
		strconv.Itoa(rank),
		builder.Name,
		builder.Identifier,
		strconv.FormatUint(builder.Blocks, 10),
		string(builder.Signing),
		builder.SearcherRPC,
	}
}

func printReport(w io.Writer, report *consistency.Report) {
	if len(report.StatsNotInBuilders) > 0 {
		fmt.Fprintln(w, "Stats entries not found in the builders document:")
		for _, entry := range report.StatsNotInBuilders {
			fmt.Fprintf(w, "  - %q (%d blocks)\n", entry.ExtraData, entry.Blocks)
		}
		fmt.Fprintln(w)
	}

	if len(report.BuildersNotInStats) > 0 {
		fmt.Fprintln(w, "Builders with extra data not found in the stats document:")
		for _, builder := range report.BuildersNotInStats {
			fmt.Fprintf(w, "  - %s (identifier: %s, extra_data: %q)\n", builder.Name, builder.Identifier, builder.ExtraData)
		}
		fmt.Fprintln(w)
	}

	if len(report.BuildersWithoutExtraData) > 0 {
		fmt.Fprintln(w, "Builders without extra data (cannot be matched with stats):")
		for _, builder := range report.BuildersWithoutExtraData {
			fmt.Fprintf(w, "  - %s (identifier: %s)\n", builder.Name, builder.Identifier)
		}
		fmt.Fprintln(w)
	}

	if !report.HasIssues() {
		fmt.Fprintln(w, "All builders and stats are properly matched.")
	}
}

func printStats(w io.Writer, result *stats.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Builder", "Blocks", "Share"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	total := result.TotalBlocks()

	for _, builder := range result.Builders {
		table.Append([]string{displayName(builder.Name), strconv.FormatUint(builder.Blocks, 10), percentage(builder.Blocks, total)})

		for i, child := range builder.Children {
			prefix := "├── "
			if i == len(builder.Children)-1 {
				prefix = "└── "
			}
			table.Append([]string{prefix + displayName(child.Name), strconv.FormatUint(child.Blocks, 10), percentage(child.Blocks, total)})
		}
	}

	table.SetFooter([]string{"TOTAL", strconv.FormatUint(total, 10), "100.00%"})
	table.Render()
}

func displayName(name string) string {
	if name == "" {
		return "(empty)"
	}
	return name
}

func percentage(blocks, total uint64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(blocks)/float64(total)*100)
}
