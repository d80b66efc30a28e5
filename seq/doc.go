// Package seq defines the data model shared by every stage of the
// sequential-print arrangement engine: the objects to place, the printer
// that will print them, the solver's tunable configuration, and the
// schedule the engine produces.
//
// seq is intentionally a leaf package: it depends only on geom (and the
// standard library), never on preprocess/optimizer/scheduler/checker, so that every
// other package can depend on seq for shared types without import cycles.
// The orchestration entry points (Schedule, Check, ...) live in the root
// package, which does import seq alongside those subpackages.
package seq
