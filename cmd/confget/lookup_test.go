// Copyright 2026 The Errata Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"gopkg.in/yaml.v3"
)

const testConfig = `
server:
  port: 8080
  tls: true
servers:
  - host: alpha
  - host: beta
`

func decodeTestConfig(t *testing.T) any {
	t.Helper()
	var doc any
	if err := yaml.Unmarshal([]byte(testConfig), &doc); err != nil {
		t.Fatalf("decoding test config: %v", err)
	}
	return doc
}

func TestLookupKey_NestedMapping(t *testing.T) {
	doc := decodeTestConfig(t)
	value, ok := lookupKey(doc, "server.port")
	if !ok {
		t.Fatal("lookupKey(server.port) reported absent")
	}
	if value != 8080 {
		t.Errorf("value %v, want 8080", value)
	}
}

func TestLookupKey_SequenceIndex(t *testing.T) {
	doc := decodeTestConfig(t)
	value, ok := lookupKey(doc, "servers.1.host")
	if !ok {
		t.Fatal("lookupKey(servers.1.host) reported absent")
	}
	if value != "beta" {
		t.Errorf("value %v, want beta", value)
	}
}

func TestLookupKey_MissingKey(t *testing.T) {
	doc := decodeTestConfig(t)
	if _, ok := lookupKey(doc, "server.address"); ok {
		t.Error("lookupKey(server.address) reported present")
	}
}

func TestLookupKey_IndexOutOfRange(t *testing.T) {
	doc := decodeTestConfig(t)
	if _, ok := lookupKey(doc, "servers.2.host"); ok {
		t.Error("lookupKey(servers.2.host) reported present")
	}
}

func TestLookupKey_DescendsIntoScalar(t *testing.T) {
	doc := decodeTestConfig(t)
	if _, ok := lookupKey(doc, "server.port.extra"); ok {
		t.Error("lookupKey(server.port.extra) reported present")
	}
}

func TestLookupKey_NonNumericSequenceSegment(t *testing.T) {
	doc := decodeTestConfig(t)
	if _, ok := lookupKey(doc, "servers.first"); ok {
		t.Error("lookupKey(servers.first) reported present")
	}
}
