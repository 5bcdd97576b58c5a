package stats

import (
	"context"
	"time"

	"peoplestats/internal/core/people"
	"peoplestats/internal/platform/config"
	perr "peoplestats/internal/platform/errors"
	"peoplestats/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Stage labels attached to aggregator failures
const (
	OpAverageSiblings = "average_siblings"
	OpTopFoods        = "top_foods"
	OpBirthMonths     = "birth_months"
)

// DefaultTopFoods is how many foods the report ranks
const DefaultTopFoods = 3

// Options controls how Summarize runs
type Options struct {
	Parallel bool
	TopFoods int
}

// FromConfig reads the stats options from config with PEOPLESTATS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("PEOPLESTATS_")
	return Options{
		Parallel: c.MayBool("PARALLEL", true),
		TopFoods: DefaultTopFoods,
	}
}

// Summary holds the three aggregates of one dataset
type Summary struct {
	AverageSiblings int
	TopFoods        []FoodCount
	BirthMonths     []MonthCount
}

// Summarize runs every aggregator over ds. A failure in any of them fails the
// whole summary; with several failures the first in report order wins.
// ctx is only checked before the aggregators start
func Summarize(ctx context.Context, ds people.Dataset, opt Options) (Summary, error) {
	if opt.TopFoods == 0 {
		opt.TopFoods = DefaultTopFoods
	}
	log := logger.Named(ctx, "stats")
	start := time.Now()

	var s Summary
	steps := []struct {
		op  string
		run func() error
	}{
		{OpAverageSiblings, func() (err error) {
			s.AverageSiblings, err = AverageSiblings(ds)
			return err
		}},
		{OpTopFoods, func() (err error) {
			s.TopFoods, err = TopFavouriteFoods(ds, opt.TopFoods)
			return err
		}},
		{OpBirthMonths, func() (err error) {
			s.BirthMonths, err = BirthMonthCount(ds)
			return err
		}},
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, perr.WithOp(err, "summarize")
	}

	// every step runs to completion; the reported failure is independent of scheduling
	errs := make([]error, len(steps))
	if opt.Parallel {
		var g errgroup.Group
		for i, st := range steps {
			g.Go(func() error {
				errs[i] = perr.WithOp(st.run(), st.op)
				return errs[i]
			})
		}
		_ = g.Wait()
	} else {
		for i, st := range steps {
			if errs[i] = perr.WithOp(st.run(), st.op); errs[i] != nil {
				break
			}
		}
	}

	for _, err := range errs {
		if err != nil {
			return Summary{}, err
		}
	}

	log.Debug().
		Int("records", ds.Len()).
		Bool("parallel", opt.Parallel).
		Dur("took", time.Since(start)).
		Msg("stats: summary computed")
	return s, nil
}
