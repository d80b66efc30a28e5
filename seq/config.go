package seq

import "time"

// SolverConfiguration holds every tunable the engine reads during
// preprocessing, optimization and scheduling. Construct one with
// DefaultSolverConfiguration and override only the fields a caller cares
// about.
type SolverConfiguration struct {
	// BoundingBoxSizeOptimizationStep is a bisection step size for
	// shrinking a plate's usable area. optimizer.Optimize does not read it:
	// its inset search bisects down to a one-unit step.
	BoundingBoxSizeOptimizationStep int

	// MinimumXBoundingBoxSize and MinimumYBoundingBoxSize are lower bounds
	// for the usable plate area. optimizer.Optimize does not read them: its
	// inset search ranges over zero to half the plate size.
	MinimumXBoundingBoxSize int
	MinimumYBoundingBoxSize int

	// MaximumXBoundingBoxSize and MaximumYBoundingBoxSize seed the
	// optimizer's initial usable area; DefaultSolverConfiguration sets these
	// from the supplied printer's bed.
	MaximumXBoundingBoxSize int
	MaximumYBoundingBoxSize int

	// ObjectGroupSize is the number of not-yet-decided objects the
	// scheduler hands to a single solver call at a time.
	ObjectGroupSize int

	// TemporalSpread is the per-object gap the scheduler leaves between
	// consecutive objects' ground temporal values, to leave room for
	// consequential pinning within a group.
	TemporalSpread int

	// DecimationPrecision controls polygon simplification during
	// preprocessing.
	DecimationPrecision DecimationPrecision

	// OptimizationTimeout bounds a single solver call (one Builder.Solve
	// invocation); exceeding it fails that call, not the whole schedule.
	OptimizationTimeout time.Duration

	// EnableConsequentialLepox turns on the lepox-adjacency constraint
	// family, pinning a lepox pair's temporal values into a bounded window
	// instead of leaving their relative order to plain temporal ordering.
	EnableConsequentialLepox bool

	// LepoxUpperSpreadFactor scales TemporalSpread to derive the upper end
	// of a lepox pair's admissible window: [T_pred+Spread,
	// T_pred+Spread*LepoxUpperSpreadFactor]. Only consulted when
	// EnableConsequentialLepox is true.
	LepoxUpperSpreadFactor float64

	// EnableConsequentialMode selects lra.GuardConsequential over
	// lra.GuardSequential for every placement constraint the optimizer
	// builds (the checker uses no guard). It is independent of EnableConsequentialLepox: this
	// flag governs whether an object can be pinned "absent" (negative T,
	// via lra.ConsequentialPresence and TemporalAbsenceThreshold) from a
	// group attempt, the former only governs lepox window pinning.
	EnableConsequentialMode bool
}

// DefaultSolverConfiguration returns the engine's baseline tunables for the
// given printer, seeding the maximum bounding box from the printer's bed
// and leaving every other field at the original solver's defaults.
func DefaultSolverConfiguration(printer PrinterGeometry) SolverConfiguration {
	return SolverConfiguration{
		BoundingBoxSizeOptimizationStep: 4,
		MinimumXBoundingBoxSize:         10,
		MinimumYBoundingBoxSize:         10,
		MaximumXBoundingBoxSize:         printer.XSize,
		MaximumYBoundingBoxSize:         printer.YSize,
		ObjectGroupSize:                 4,
		TemporalSpread:                  16,
		DecimationPrecision:             DecimationHigh,
		OptimizationTimeout:             8 * time.Second,
		EnableConsequentialLepox:        false,
		LepoxUpperSpreadFactor:          1.5,
		EnableConsequentialMode:         false,
	}
}
