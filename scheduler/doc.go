// Package scheduler implements the sub-global scheduler: it walks a
// plate's undecided objects group by group, shrinking the group on
// failure, and renumbers decided objects' temporal values as each group
// commits, until either everything is placed (closing the plate) or a
// remainder has to spill into a new plate.
//
// What:
//
//   - SchedulePlate: one plate's worth of the outer loop described by the
//     design notes - group selection, shrink-on-failure, temporal
//     renumbering, lepox pinning.
//   - Schedule: drives SchedulePlate repeatedly over the full object list,
//     closing plates and recursing on the remainder until it is empty.
//
// Why:
//
//   - Splitting "decide one plate's worth" from "drive plates until done"
//     keeps the lepox/remainder bookkeeping (this package) separate from
//     the SAT search it delegates to (optimizer, internal/lra).
//
// Errors:
//
//   - seq.ErrCompleteSchedulingFailure: not even a single object fits on
//     an empty plate.
package scheduler
