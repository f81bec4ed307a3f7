// Package cli implements the mev-builders command line tool: listing the
// generated builder table, checking source-document consistency, verifying
// alternate source documents, and aggregating fresh block statistics.
package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	mevbuilders "github.com/flashbots/mev-builders"
	"github.com/flashbots/mev-builders/config"
	"github.com/flashbots/mev-builders/consistency"
	"github.com/flashbots/mev-builders/registry"
	"github.com/flashbots/mev-builders/stats"
)

var log = logrus.NewEntry(logrus.New())

// Main starts the mev-builders cli
func Main() {
	app := newCommand()
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "mev-builders",
		Usage:   "tools around the known MEV builders table",
		Version: config.Version,
		Flags: []cli.Flag{
			jsonFlag,
			debugFlag,
			logLevelFlag,
			logServiceFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			listCommand(),
			checkCommand(),
			verifyCommand(),
			statsCommand(),
		},
	}
}

func setupLogging(_ context.Context, cmd *cli.Command) error {
	log.Logger.SetOutput(os.Stderr)
	if cmd.Bool("json") {
		log.Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logLevel := cmd.String("loglevel")
	if cmd.Bool("debug") {
		logLevel = "debug"
	}
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.Logger.SetLevel(lvl)

	if service := cmd.String("log-service"); service != "" {
		log = log.WithField("service", service)
	}

	return nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print the generated builder table",
		Action: func(_ context.Context, _ *cli.Command) error {
			printBuilders(os.Stdout, mevbuilders.Active(), mevbuilders.Other())
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "check consistency between the builders document and the stats document",
		Flags: []cli.Flag{buildersFileFlag, statsFileFlag, failOnErrorsFlag},
		Action: func(_ context.Context, cmd *cli.Command) error {
			report, err := consistency.Check(cmd.String("builders"), cmd.String("stats"))
			if err != nil {
				return err
			}

			printReport(os.Stdout, report)

			if cmd.Bool("fail-on-errors") && report.HasIssues() {
				return errors.New("consistency check found issues")
			}

			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "run the full table generation over the given source documents and report every violation",
		Flags: []cli.Flag{buildersFileFlag, statsFileFlag},
		Action: func(_ context.Context, cmd *cli.Command) error {
			table, err := registry.GenerateFromFiles(cmd.String("builders"), cmd.String("stats"))
			if err != nil {
				return err
			}

			if unmatched := table.UnmatchedStats(); len(unmatched) > 0 {
				log.WithField("extraData", unmatched).Warn("stats entries without a matching builder")
			}

			log.WithFields(logrus.Fields{
				"builders": table.Len(),
				"active":   len(table.Active()),
				"inactive": len(table.Other()),
			}).Info("builder table generated successfully")

			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "aggregate builder block stats from public block-production data",
		Flags: []cli.Flag{startFlag, endFlag, daysFlag, outputFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dates, err := stats.DateRange(cmd.String("start"), cmd.String("end"), int(cmd.Int("days")))
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"from": dates[0],
				"to":   dates[len(dates)-1],
				"days": len(dates),
			}).Info("aggregating builder stats")

			aggregator := stats.NewAggregator(stats.Opts{
				Log:     log,
				Timeout: time.Duration(config.StatsRequestTimeoutMs) * time.Millisecond,
			})

			result, err := aggregator.AggregateRange(ctx, dates)
			if err != nil {
				return err
			}

			printStats(os.Stdout, result)

			output := cmd.String("output")
			if err := stats.WriteStatsFile(output, result.Flat); err != nil {
				return err
			}
			log.WithField("output", output).Info("stats document written")

			return nil
		},
	}
}
