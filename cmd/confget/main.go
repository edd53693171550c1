// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

// confget prints a value from a YAML configuration file.
//
// The key is a dot-separated path of mapping keys and sequence
// indexes. Scalars print as-is; mappings and sequences print as YAML.
// Every failure (unreadable file, invalid YAML, missing key) is an
// expected failure: one line on stderr, exit status 1.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Kyllingene/errata"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func main() {
	errata.Main(run)
}

func run() {
	colorMode := pflag.String("color", "auto", "colorize failure messages: auto, always, or never")
	verbose := pflag.Bool("verbose", false, "log lookup steps to stderr")
	pflag.Usage = printUsage
	pflag.Parse()

	args := pflag.Args()
	if len(args) != 2 {
		printUsage()
		errata.Fail("expected a config file and a key path")
	}
	path, keyPath := args[0], args[1]

	color := colorEnabled(*colorMode)
	logger := newLogger(*verbose)

	logger.Debug("reading config", "path", path)
	raw, err := os.ReadFile(path)
	check(color, err, "could not read "+path)

	var doc any
	check(color, yaml.Unmarshal(raw, &doc), "invalid YAML in "+path)

	logger.Debug("looking up key", "key", keyPath)
	value, ok := lookupKey(doc, keyPath)
	value = expect(color, value, ok, "no key "+keyPath+" in "+path)

	switch value.(type) {
	case map[string]any, []any:
		out, err := yaml.Marshal(value)
		check(color, err, "could not render value of "+keyPath)
		os.Stdout.Write(out)
	default:
		fmt.Println(value)
	}
}

// check routes an error through the plain or emphasized failure
// pathway depending on the --color policy. Returns only when err is
// nil.
func check(color bool, err error, msg string) {
	if color {
		errata.MustColor(struct{}{}, err, msg)
		return
	}
	errata.Must(struct{}{}, err, msg)
}

// expect is errata.Expect with the same --color routing as check.
func expect[T any](color bool, v T, ok bool, msg string) T {
	if color {
		return errata.ExpectColor(v, ok, msg)
	}
	return errata.Expect(v, ok, msg)
}

// colorEnabled resolves the --color flag. "auto" emphasizes failures
// only when stderr is a terminal that has not opted out of color via
// NO_COLOR or a dumb profile.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	case "auto":
		if termenv.EnvNoColor() || termenv.EnvColorProfile() == termenv.Ascii {
			return false
		}
		return term.IsTerminal(int(os.Stderr.Fd()))
	default:
		errata.Failf("invalid --color mode %q (want auto, always, or never)", mode)
	}
	return false
}

// newLogger builds the command's structured logger. Human-readable on
// a terminal, JSON when stderr is piped or redirected.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: confget [flags] <file> <key.path>

Print a value from a YAML configuration file. The key path is a
dot-separated sequence of mapping keys and sequence indexes.

Flags:
%s
Examples:
  confget app.yaml server.port
  confget app.yaml servers.0.host
`, pflag.CommandLine.FlagUsages())
}
