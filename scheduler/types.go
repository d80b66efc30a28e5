package scheduler

import (
	"github.com/gosequential/seqarrange/preprocess"
)

// decidedEntry is one object the sub-global scheduler has committed to a
// plate: its geometry, its solved offset, and its (possibly not yet
// renumbered) temporal value. inputIndex is the object's position in the
// plate's original undecided list, used only to resolve lepox adjacency.
type decidedEntry struct {
	object     preprocess.PreparedObject
	x, y       int
	t          float64
	inputIndex int
}
