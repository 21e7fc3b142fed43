package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/weiihann/kadanebench/metrics"
	"github.com/weiihann/kadanebench/scan"
	"github.com/weiihann/kadanebench/workload"
)

// RunConfig holds parameters shared by every run of a sweep.
type RunConfig struct {
	Output   string
	Workload workload.Config
}

// Runner executes sweeps sequentially, one size at a time.
type Runner struct {
	Output   string
	Workload workload.Config
	Logger   *slog.Logger
}

// NewRunner creates a Runner that appends to cfg.Output.
func NewRunner(cfg RunConfig, logger *slog.Logger) *Runner {
	return &Runner{
		Output:   cfg.Output,
		Workload: cfg.Workload,
		Logger:   logger,
	}
}

// Run sweeps every size in order and returns one record per size. An
// invalid size set is replaced by DefaultSizes as a whole. Failing to
// append a record to the log is logged and does not stop the sweep; the
// record is still returned.
//
// ctx only scopes logging. A sweep always runs to completion.
func (r *Runner) Run(ctx context.Context, sizes []int) ([]metrics.Record, error) {
	if err := r.Workload.Validate(); err != nil {
		return nil, fmt.Errorf("workload config: %w", err)
	}

	if err := ValidateSizes(sizes); err != nil {
		r.Logger.WarnContext(ctx, "falling back to default sizes",
			slog.String("error", err.Error()),
		)

		sizes = DefaultSizes()
	}

	logger := r.Logger.With(slog.String("sweep_id", uuid.NewString()))

	logger.InfoContext(ctx, "starting sweep",
		slog.Any("sizes", sizes),
		slog.String("output", r.Output),
		slog.Int64("seed", r.Workload.Seed),
	)

	records := make([]metrics.Record, 0, len(sizes))

	for _, size := range sizes {
		rec, err := r.runOne(ctx, logger, size)
		if err != nil {
			return records, fmt.Errorf("run size %d: %w", size, err)
		}

		records = append(records, rec)
	}

	logger.InfoContext(ctx, "sweep complete", slog.Int("runs", len(records)))

	return records, nil
}

func (r *Runner) runOne(
	ctx context.Context,
	logger *slog.Logger,
	size int,
) (metrics.Record, error) {
	seq := workload.NewGenerator(r.Workload).Ints(size)

	m := metrics.New()

	result, err := scan.New(m).MaxSubarray(seq)
	if err != nil {
		return metrics.Record{}, err
	}

	logger.InfoContext(ctx, "scan finished",
		slog.Int("size", size),
		slog.Int("max_sum", result.MaxSum),
		slog.Int("start", result.Start),
		slog.Int("end", result.End),
		slog.Int64("comparisons", m.Comparisons()),
		slog.Int64("accesses", m.Accesses()),
		slog.Duration("elapsed", m.Elapsed()),
	)

	if r.Output != "" {
		if err := m.Export(r.Output, size); err != nil {
			logger.WarnContext(ctx, "failed to export metrics",
				slog.Int("size", size),
				slog.String("error", err.Error()),
			)
		}
	}

	return m.Snapshot(size), nil
}
