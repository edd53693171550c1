// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

package errata

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses of a program wrapped by Main. Exported so wrapper
// scripts and integration tests can check codes symbolically instead of
// using magic numbers.
const (
	// ExitSuccess: the wrapped computation returned normally.
	ExitSuccess = 0

	// ExitFailure: a classified failure (raised by Fail and friends)
	// reached Main.
	ExitFailure = 1

	// ExitDefect: an unclassified panic reached Main. Main re-raises
	// such panics so the runtime prints its usual crash report, and
	// the status is the runtime's own choice; errata never passes this
	// value to os.Exit itself.
	ExitDefect = 2
)

// Seams for in-process tests. Production always uses the defaults;
// subprocess tests cover those.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Main runs the program's top-level computation and intercepts any
// failure that unwinds out of it. Install it exactly once, around the
// true outer boundary of the process:
//
//	func main() {
//	    errata.Main(run)
//	}
//
// A classified failure prints its message verbatim to stderr, followed
// by a newline, and exits with ExitFailure. Any other panic is
// re-raised untouched: the runtime prints its normal crash diagnostic
// (message, goroutine dumps, GOTRACEBACK handling) and the process
// exits with the runtime's panic status, ExitDefect. A normal return
// from run returns from Main, and the process exits ExitSuccess when
// main does.
//
// By the time Main renders a message, every deferred function between
// the raise site and the boundary has already run; interception happens
// only after the unwind reaches the outermost frame.
//
// Nesting Main, or installing it anywhere other than the outermost
// frame, double-intercepts and is a usage error; it is not detected at
// runtime. A panic in a goroutine other than the one that called Main
// never reaches the boundary (the runtime kills the process first), so
// worker failures must be joined into the main goroutine before being
// raised.
func Main(run func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(failure)
		if !ok {
			// Unclassified defect: let the runtime render it.
			panic(r)
		}
		fmt.Fprintln(stderr, f.msg)
		exit(ExitFailure)
	}()
	run()
}
