// Package seqarrange is the public façade for the sequential print
// arrangement engine: it wires preprocessing, the sub-global scheduler,
// the binary-centred group optimiser, and the printability checker
// together behind three entry points mirroring the original solver's
// public surface.
package seqarrange

import (
	"context"

	"github.com/gosequential/seqarrange/checker"
	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/scheduler"
	"github.com/gosequential/seqarrange/seq"
)

// ProgressFunc is called as plates are emitted. progress is reported in
// [0, 1<<30], roughly proportional to objects decided so far over the
// total object count.
type ProgressFunc func(progress int)

// Schedule is the all-in-one entry point: it preprocesses objects against
// printer, then drives the sub-global scheduler across as many plates as
// needed, returning the full plate list.
func Schedule(ctx context.Context, cfg seq.SolverConfiguration, printer seq.PrinterGeometry, objects []seq.ObjectToPrint, onProgress ProgressFunc) ([]seq.ScheduledPlate, error) {
	prepared, err := preprocess.PrepareAll(cfg, printer, objects)
	if err != nil {
		return nil, err
	}

	total := len(objects)
	decidedSoFar := 0
	var wrapped scheduler.ProgressFunc
	if onProgress != nil {
		wrapped = func(plateIndex, remaining int) {
			decidedSoFar = total - remaining
			onProgress(progressFraction(decidedSoFar, total))
		}
	}

	guard := lra.GuardSequential
	if cfg.EnableConsequentialMode {
		guard = lra.GuardConsequential
	}

	return scheduler.Schedule(ctx, cfg, cfg.MaximumXBoundingBoxSize, cfg.MaximumYBoundingBoxSize, prepared, guard, wrapped)
}

// ScheduleWithPreprocessed is the entry point for callers that have
// already reduced their objects to PreparedObject form (e.g. because they
// computed unreachable zones themselves): it skips preprocessing and
// drives the scheduler directly.
func ScheduleWithPreprocessed(ctx context.Context, cfg seq.SolverConfiguration, plateSizeX, plateSizeY int, objects []preprocess.PreparedObject, onProgress ProgressFunc) ([]seq.ScheduledPlate, error) {
	total := len(objects)
	var wrapped scheduler.ProgressFunc
	if onProgress != nil {
		wrapped = func(plateIndex, remaining int) {
			onProgress(progressFraction(total-remaining, total))
		}
	}

	guard := lra.GuardSequential
	if cfg.EnableConsequentialMode {
		guard = lra.GuardConsequential
	}

	return scheduler.Schedule(ctx, cfg, plateSizeX, plateSizeY, objects, guard, wrapped)
}

// Check independently re-verifies a proposed arrangement against printer
// and the original objects, returning true iff no collision is found.
func Check(cfg seq.SolverConfiguration, printer seq.PrinterGeometry, objects []seq.ObjectToPrint, plates []seq.ScheduledPlate) (bool, error) {
	prepared, err := preprocess.PrepareAll(cfg, printer, objects)
	if err != nil {
		return false, err
	}
	violations := checker.Check(printer, prepared, plates)
	return len(violations) == 0, nil
}

func progressFraction(decided, total int) int {
	if total == 0 {
		return 1 << 30
	}
	return int((int64(decided) << 30) / int64(total))
}
