// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

package errata

import "fmt"

// Emphasis sequences used by the Color variants: foreground color
// index 1, then bold, closed by a full reset. They are baked into the
// message at raise time, so Main prints the stored text verbatim and
// the terminal is reset by the suffix rather than by any print-time
// logic.
const (
	emphasisPrefix = "\x1b[38;5;1m\x1b[1m"
	emphasisReset  = "\x1b[0m"
)

// failure is the classified panic payload. Only the raise operations
// below construct one, and only Main consumes one; no other code holds
// or inspects it. The message is final at construction.
type failure struct {
	msg string
}

// Fail aborts the program with msg. The stack unwinds normally, running
// every deferred function on the way, until Main intercepts the
// failure, writes msg and a trailing newline to stderr, and exits with
// ExitFailure.
//
// Fail never returns.
func Fail(msg string) {
	panic(failure{msg: msg})
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf(format string, args ...any) {
	Fail(fmt.Sprintf(format, args...))
}

// FailColor is Fail with the message rendered in bold red.
func FailColor(msg string) {
	Fail(emphasisPrefix + msg + emphasisReset)
}

// FailColorf is FailColor with fmt.Sprintf formatting.
func FailColorf(format string, args ...any) {
	FailColor(fmt.Sprintf(format, args...))
}

// Expect returns v when ok is true and otherwise aborts with msg,
// exactly like Fail. It adapts the comma-ok idiom (map lookups, type
// assertions) to the failure pathway:
//
//	addr, ok := listeners["https"]
//	addr = errata.Expect(addr, ok, "no https listener configured")
func Expect[T any](v T, ok bool, msg string) T {
	if !ok {
		Fail(msg)
	}
	return v
}

// ExpectColor is Expect with the message rendered in bold red.
func ExpectColor[T any](v T, ok bool, msg string) T {
	if !ok {
		FailColor(msg)
	}
	return v
}

// Must returns v when err is nil and otherwise aborts with
// "msg: <err>". The caller-supplied context always comes first and the
// underlying cause second; an empty msg is not suppressed, it yields
// ": <err>". This is a drop-in for the unwrap-or-die pattern:
//
//	data, err := os.ReadFile(path)
//	cfg := errata.Must(data, err, "could not read config")
func Must[T any](v T, err error, msg string) T {
	if err != nil {
		Fail(msg + ": " + err.Error())
	}
	return v
}

// MustColor is Must with the combined message rendered in bold red.
func MustColor[T any](v T, err error, msg string) T {
	if err != nil {
		FailColor(msg + ": " + err.Error())
	}
	return v
}
