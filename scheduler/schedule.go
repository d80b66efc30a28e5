package scheduler

import (
	"context"

	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/seq"
)

// ProgressFunc, when non-nil, is called after each plate closes with the
// plate's index (0-based) and how many objects it still has left to place.
type ProgressFunc func(plateIndex, remainingObjects int)

// Schedule drives SchedulePlate across as many plates as it takes to place
// every object in objects, closing a plate and recursing on its remainder
// until nothing is left.
func Schedule(ctx context.Context, cfg seq.SolverConfiguration, plateSizeX, plateSizeY int, objects []preprocess.PreparedObject, guard lra.PointOutsideGuard, onProgress ProgressFunc) ([]seq.ScheduledPlate, error) {
	var plates []seq.ScheduledPlate
	remaining := objects
	plateIndex := 0

	for len(remaining) > 0 {
		result, err := SchedulePlate(ctx, cfg, plateSizeX, plateSizeY, remaining, guard)
		if err != nil {
			return nil, err
		}

		plates = append(plates, seq.ScheduledPlate{ScheduledObjects: result.Decided})
		remaining = result.Remaining

		if onProgress != nil {
			onProgress(plateIndex, len(remaining))
		}
		plateIndex++
	}

	return plates, nil
}
