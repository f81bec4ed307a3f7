// Package config holds the build-time version and environment-configurable
// settings.
package config

import (
	"github.com/flashbots/go-utils/cli"
)

// Set during build
var (
	// Version is the version of the software, set at build time
	Version = "v0.2.0-dev"
)

// Other settings
var (
	// StatsBaseURL is the base URL of the public block-production data source
	// queried by the stats aggregator.
	StatsBaseURL = cli.GetEnv("MEV_BUILDERS_STATS_BASE_URL", "https://www.relayscan.io")

	// StatsRequestTimeoutMs sets the per-request timeout for fetching daily stats.
	StatsRequestTimeoutMs = cli.GetEnvInt("MEV_BUILDERS_STATS_TIMEOUT_MS", 10000)

	// StatsDefaultDays is the default length of the observation window in days.
	StatsDefaultDays = cli.GetEnvInt("MEV_BUILDERS_STATS_DAYS", 7)
)
