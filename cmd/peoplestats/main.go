// Command peoplestats prints sibling, favourite food and birth month statistics
// for a JSON, CSV or gzip-compressed people file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // birth months must not depend on the host tz database

	"peoplestats/internal/adapters/ingest/peoplefile"
	"peoplestats/internal/core/report"
	"peoplestats/internal/core/stats"
	"peoplestats/internal/core/version"
	"peoplestats/internal/platform/config"
	perr "peoplestats/internal/platform/errors"
	"peoplestats/internal/platform/logger"

	"github.com/google/uuid"
)

// OpReport tags failures writing the report
const OpReport = "report"

const usage = "usage: peoplestats <file.json|file.csv|file.json.gz|file.csv.gz>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one pipeline and returns the process exit code.
// stdout only ever receives the complete report
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	switch {
	case len(args) == 0:
		_, _ = fmt.Fprintln(stderr, "error: path to a valid file is not provided")
		_, _ = fmt.Fprintln(stderr, usage)
		return perr.ExitCode(perr.ErrorCodeInvalidArgument)
	case len(args) > 1:
		_, _ = fmt.Fprintf(stderr, "error: expected exactly 1 argument, got %d\n", len(args))
		_, _ = fmt.Fprintln(stderr, usage)
		return perr.ExitCode(perr.ErrorCodeInvalidArgument)
	}
	path := args[0]

	bi := version.Info()
	lopt := logger.FromEnv()
	lopt.Writer = stderr
	if lopt.Service == "" {
		lopt.Service = bi.Service
	}
	lopt.StaticFields = bi.Fields()
	logger.Init(lopt)

	ctx = logger.WithRun(ctx, uuid.NewString())
	log := logger.C(ctx)

	if err := pipeline(ctx, config.New(), path, stdout); err != nil {
		ev := log.Error().Err(err).
			Str("op", perr.OpOf(err)).
			Str("code", perr.CodeOf(err).String()).
			Str("path", path)
		if e, ok := perr.As(err); ok && e.Field() != "" {
			ev = ev.Str("field", e.Field())
		}
		ev.Msg("peoplestats: run failed")

		_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", perr.OpOf(err), err)
		return perr.ExitCodeOf(err)
	}
	log.Info().Str("path", path).Msg("peoplestats: done")
	return 0
}

// pipeline is load, summarize, report; the first failure ends the run
func pipeline(ctx context.Context, cfg config.Conf, path string, stdout io.Writer) error {
	ds, err := peoplefile.New(peoplefile.FromConfig(cfg)).Load(ctx, path)
	if err != nil {
		return err
	}
	sum, err := stats.Summarize(ctx, ds, stats.FromConfig(cfg))
	if err != nil {
		return err
	}
	return perr.WithOp(report.Write(stdout, sum), OpReport)
}
