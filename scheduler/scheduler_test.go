package scheduler_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/scheduler"
	"github.com/gosequential/seqarrange/seq"
)

func square(side int) geom.Polygon {
	return geom.Polygon{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}}
}

func TestSchedulePlatePlacesEveryObjectInOneGroup(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(seq.PrinterGeometry{XSize: 250, YSize: 210})
	cfg.OptimizationTimeout = 2 * time.Second
	cfg.ObjectGroupSize = 3
	cfg.TemporalSpread = 4

	objs := []preprocess.PreparedObject{
		{ID: 1, Footprint: square(10)},
		{ID: 2, Footprint: square(10)},
	}

	result, err := scheduler.SchedulePlate(context.Background(), cfg, 250, 210, objs, lra.GuardNone)
	require.NoError(t, err)
	assert.Len(t, result.Decided, 2)
	assert.Empty(t, result.Remaining)
}

func TestSchedulePlateFailsCompletely(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(seq.PrinterGeometry{XSize: 250, YSize: 210})
	cfg.OptimizationTimeout = 100 * time.Millisecond

	objs := []preprocess.PreparedObject{
		{ID: 1, Footprint: square(10000)}, // larger than the plate itself
	}

	_, err := scheduler.SchedulePlate(context.Background(), cfg, 250, 210, objs, lra.GuardNone)
	require.ErrorIs(t, err, seq.ErrCompleteSchedulingFailure)
}

func TestScheduleDrivesMultiplePlatesToCompletion(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(seq.PrinterGeometry{XSize: 250, YSize: 210})
	cfg.OptimizationTimeout = 2 * time.Second
	cfg.ObjectGroupSize = 2
	cfg.TemporalSpread = 4

	objs := []preprocess.PreparedObject{
		{ID: 1, Footprint: square(10)},
		{ID: 2, Footprint: square(10)},
		{ID: 3, Footprint: square(10)},
	}

	var progressed []int
	plates, err := scheduler.Schedule(context.Background(), cfg, 250, 210, objs, lra.GuardNone, func(idx, remaining int) {
		progressed = append(progressed, remaining)
	})
	require.NoError(t, err)
	assert.NotEmpty(t, plates)

	total := 0
	for _, p := range plates {
		total += len(p.ScheduledObjects)
	}
	assert.Equal(t, 3, total)
	assert.NotEmpty(t, progressed)

	var gotIDs []int
	for _, p := range plates {
		for _, o := range p.ScheduledObjects {
			gotIDs = append(gotIDs, o.ID)
		}
	}
	sort.Ints(gotIDs)
	wantIDs := []int{1, 2, 3}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("scheduled object IDs mismatch (-want +got):\n%s", diff)
	}
}
