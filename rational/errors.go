package rational

import "errors"

// ErrArithmeticOverflow is returned by the overflow-checked arithmetic
// helper AddIntChecked when an int64 numerator would wrap. Detection is
// opt-in (call AddIntChecked instead of AddInt); other operations wrap silently,
// matching the reference engine's behavior.
var ErrArithmeticOverflow = errors.New("rational: arithmetic overflow")
