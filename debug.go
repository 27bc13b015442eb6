package siman

import "fmt"

// Debug gates the contract-violation assertion in equilibrate that checks
// the running shadow cost against the MoveManager's own Score() after every
// accepted move. Go has no release/debug build split for a single binary,
// so this is a package-level switch instead of a compiled-out assert.
// cmd/siman turns it on with --debug; callers normally leave it off to avoid
// the extra Score() call per acceptance.
var Debug = false

// debugAssert panics with msg if Debug is enabled and cond is false. It is a
// no-op otherwise. Used exclusively for the curr_cost/Score() agreement
// check against a drifting incremental cost tracker.
func debugAssert(cond bool, msg string, args ...any) {
	if !Debug || cond {
		return
	}
	panic(fmt.Sprintf(msg, args...))
}
