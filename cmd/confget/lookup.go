// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strconv"
	"strings"
)

// lookupKey walks a dotted key path through a decoded YAML document.
// Mapping nodes are indexed by key name, sequence nodes by decimal
// index. Reports false when any segment does not resolve, including a
// path that descends into a scalar.
func lookupKey(doc any, path string) (any, bool) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}
