package optimizer

import (
	"github.com/gosequential/seqarrange/internal/lra"
	"github.com/gosequential/seqarrange/preprocess"
)

// FixedObject is an already-decided object: its geometry plus the
// rational X, Y, T values a previous group's solve assigned it, in solver
// units.
type FixedObject struct {
	Object preprocess.PreparedObject
	X, Y   int
	T      float64
}

// Placement is one undecided object's assigned offset and temporal value,
// in solver units, as extracted from a feasible model.
type Placement struct {
	ID   int
	X, Y int
	T    float64
}

// Result is the outcome of one Optimize call.
type Result struct {
	Status      lra.Status
	Placements  []Placement
	HalfX, HalfY int // the feasible inset found, for diagnostics
}
