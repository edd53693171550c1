// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

// Package errata turns expected failures into clean process termination.
//
// A program dies in two ways: an expected failure the operator can act
// on (a missing file, an invalid flag, a full disk), or a defect in the
// program itself. Errata keeps the two apart at the single point where
// either becomes fatal. Expected failures print one readable line and
// exit with status 1; defects keep the Go runtime's full panic report
// and its exit status, so debuggers and crash tooling see exactly what
// they would without errata in the picture.
//
// Wrap the program's top-level logic once, in main:
//
//	func main() {
//	    errata.Main(run)
//	}
//
//	func run() {
//	    data, err := os.ReadFile(path)
//	    cfg := errata.Must(data, err, "could not read config")
//	    // ...
//	}
//
// Inside run (and everything it calls), Fail and Failf abort with a
// message, and Must and Expect convert the (value, error) and
// (value, ok) return idioms into the same pathway. Each has a Color
// variant that renders the message in bold red for terminals.
//
// Failures raised this way unwind the stack normally: every deferred
// function between the raise site and Main runs before the message is
// printed. Conditions that are genuinely bugs should keep panicking
// the ordinary way; Main passes anything that is not an errata failure
// straight back to the runtime, traceback and all.
package errata
