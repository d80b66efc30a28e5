package scheduler

import (
	"sort"

	"github.com/gosequential/seqarrange/seq"
)

// renumber sorts decided by its solved T, then forcibly moves any
// lepox-linked object's immediate successor (by original input position)
// to directly follow it if the solver didn't already place them adjacently,
// and finally reassigns T = GroundPresenceTime + k*2*TemporalSpread*ObjectGroupSize
// in the resulting print order.
func renumber(decided []decidedEntry, cfg seq.SolverConfiguration) []decidedEntry {
	sort.SliceStable(decided, func(i, j int) bool { return decided[i].t < decided[j].t })

	byInputIndex := make(map[int]int, len(decided)) // inputIndex -> position in decided
	for i, d := range decided {
		byInputIndex[d.inputIndex] = i
	}

	for i := 0; i < len(decided); i++ {
		if !decided[i].object.LepoxToNext {
			continue
		}
		successorPos, ok := byInputIndex[decided[i].inputIndex+1]
		if !ok || successorPos == i+1 {
			continue
		}
		moveAdjacent(decided, i, successorPos)
		byInputIndex = make(map[int]int, len(decided))
		for k, d := range decided {
			byInputIndex[d.inputIndex] = k
		}
	}

	for k := range decided {
		decided[k].t = float64(seq.GroundPresenceTime + k*2*cfg.TemporalSpread*cfg.ObjectGroupSize)
	}

	return decided
}

// moveAdjacent removes the element at successorPos and reinserts it
// immediately after position i.
func moveAdjacent(decided []decidedEntry, i, successorPos int) {
	successor := decided[successorPos]
	if successorPos > i {
		copy(decided[i+2:successorPos+1], decided[i+1:successorPos])
		decided[i+1] = successor
	} else {
		// successorPos < i: shift the block (successorPos+1 .. i) left by one,
		// then place successor at position i.
		copy(decided[successorPos:i], decided[successorPos+1:i+1])
		decided[i] = successor
	}
}
