package lra

import "errors"

// ErrUnknownAssumption is returned by Builder.RemoveAssumption when no
// assumption was registered under the given name.
var ErrUnknownAssumption = errors.New("lra: unknown assumption name")

// ErrNoSolution reports that no solution is available. No function in this
// package returns it: Model is a plain map, and Builder.Solve signals a
// missing solution through its Status instead.
var ErrNoSolution = errors.New("lra: no solution available")
