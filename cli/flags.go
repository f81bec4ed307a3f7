package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/flashbots/mev-builders/config"
)

const (
	LoggingCategory = "LOGGING AND DEBUGGING"
	SourcesCategory = "SOURCE DOCUMENTS"
	StatsCategory   = "STATS AGGREGATION"
)

var (
	// Logging and debugging
	jsonFlag = &cli.BoolFlag{
		Name:     "json",
		Sources:  cli.EnvVars("LOG_JSON"),
		Usage:    "log in JSON format instead of text",
		Category: LoggingCategory,
	}
	debugFlag = &cli.BoolFlag{
		Name:     "debug",
		Sources:  cli.EnvVars("DEBUG"),
		Usage:    "shorthand for '--loglevel debug'",
		Category: LoggingCategory,
	}
	logLevelFlag = &cli.StringFlag{
		Name:     "loglevel",
		Sources:  cli.EnvVars("LOG_LEVEL"),
		Value:    "info",
		Usage:    "minimum loglevel: trace, debug, info, warn/warning, error, fatal, panic",
		Category: LoggingCategory,
	}
	logServiceFlag = &cli.StringFlag{
		Name:     "log-service",
		Sources:  cli.EnvVars("LOG_SERVICE_TAG"),
		Value:    "",
		Usage:    "add a 'service=...' tag to all log messages",
		Category: LoggingCategory,
	}
	// Source documents
	buildersFileFlag = &cli.StringFlag{
		Name:     "builders",
		Aliases:  []string{"b"},
		Sources:  cli.EnvVars("MEV_BUILDERS_FILE"),
		Value:    "data/builders.json",
		Usage:    "path to the builders document",
		Category: SourcesCategory,
	}
	statsFileFlag = &cli.StringFlag{
		Name:     "stats",
		Aliases:  []string{"s"},
		Sources:  cli.EnvVars("MEV_BUILDERS_STATS_FILE"),
		Value:    "data/builders_stats.json",
		Usage:    "path to the stats document",
		Category: SourcesCategory,
	}
	failOnErrorsFlag = &cli.BoolFlag{
		Name:     "fail-on-errors",
		Usage:    "exit with an error code if inconsistencies are found",
		Category: SourcesCategory,
	}
	// Stats aggregation
	startFlag = &cli.StringFlag{
		Name:     "start",
		Usage:    "start date in YYYY-MM-DD format (inclusive)",
		Category: StatsCategory,
	}
	endFlag = &cli.StringFlag{
		Name:     "end",
		Usage:    "end date in YYYY-MM-DD format (inclusive)",
		Category: StatsCategory,
	}
	daysFlag = &cli.IntFlag{
		Name:     "days",
		Aliases:  []string{"d"},
		Usage:    "number of days to fetch (ignored if start/end provided)",
		Value:    int64(config.StatsDefaultDays),
		Category: StatsCategory,
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Value:    "data/builders_stats.json",
		Usage:    "output file path for the aggregated stats document",
		Category: StatsCategory,
	}
)
