// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements the byte-level escape dispatch tables and
// the string/number encoders built on top of them. It is grounded on
// the teacher's internal/jsonwire package (escape.go, encode.go) but
// generalized from two orthogonal boolean flags (html, js) to the
// spec's four named escape profiles.
package jsonwire

// action classifies a single ASCII byte under one escape table.
//
//   - actionChunk: the byte passes through verbatim, extending the
//     current run.
//   - actionUnicodeHex: emit "\u00XX" for this byte.
//   - any other value v: emit the two-byte sequence '\\', v.
//
// This is the spec's 128-entry dispatch table (spec.md §3, §4.1):
// a fixed array indexed directly by byte, built once at package
// initialization rather than compared against ranges at runtime.
type action = byte

const (
	actionChunk      action = 0
	actionUnicodeHex action = 1
)

// tables holds the two ASCII dispatch tables needed by the four escape
// profiles: EscapeJSON and EscapeJavaScript share canonicalTable (their
// difference is only in non-ASCII rune handling, see EscapesLineSeparators);
// EscapeHTMLSafe additionally escapes '/'. EscapeUnicode also starts
// from canonicalTable for the ASCII range — its extra behavior is
// escaping every non-ASCII rune, handled outside the table.
var (
	canonicalTable [128]action
	htmlSafeTable  [128]action
)

func init() {
	for i := range canonicalTable {
		canonicalTable[i] = actionChunk
	}
	for i := 0; i < 0x20; i++ {
		canonicalTable[i] = actionUnicodeHex
	}
	canonicalTable['"'] = '"'
	canonicalTable['\\'] = '\\'
	canonicalTable['\b'] = 'b'
	canonicalTable['\t'] = 't'
	canonicalTable['\n'] = 'n'
	canonicalTable['\f'] = 'f'
	canonicalTable['\r'] = 'r'

	htmlSafeTable = canonicalTable
	htmlSafeTable['/'] = '/'
}

// Profile is the compiled form of one of the spec's four escape
// profiles, bundling the ASCII dispatch table with the non-ASCII
// behavior that the table alone cannot express.
type Profile struct {
	table *[128]action

	// escapeLineSeparators escapes U+2028/U+2029 as  /
	// instead of passing them through verbatim (javascript, html_safe).
	escapeLineSeparators bool

	// escapeAllNonASCII escapes every rune >= U+0080 instead of copying
	// valid UTF-8 sequences through verbatim (unicode profile only).
	escapeAllNonASCII bool
}

var (
	ProfileJSON = Profile{table: &canonicalTable}
	ProfileJavaScript = Profile{
		table:                &canonicalTable,
		escapeLineSeparators: true,
	}
	ProfileHTMLSafe = Profile{
		table:                &htmlSafeTable,
		escapeLineSeparators: true,
	}
	ProfileUnicode = Profile{
		table:             &canonicalTable,
		escapeAllNonASCII: true,
	}
)

// Dispatch reports how ASCII byte c (c < 0x80) should be handled.
func (p *Profile) Dispatch(c byte) action {
	return p.table[c]
}

// EscapesLineSeparators reports whether U+2028/U+2029 get \uXXXX escapes.
func (p *Profile) EscapesLineSeparators() bool { return p.escapeLineSeparators }

// EscapesAllNonASCII reports whether every non-ASCII rune is escaped.
func (p *Profile) EscapesAllNonASCII() bool { return p.escapeAllNonASCII }
