// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

// EscapeProfile selects which bytes and runes the string escaper treats
// as needing a replacement sequence. See internal/jsonwire for the
// compiled dispatch tables backing each profile.
type EscapeProfile int

const (
	// EscapeJSON escapes only what RFC 7159 requires: the ASCII control
	// characters, '"', and '\\'. This is the default.
	EscapeJSON EscapeProfile = iota
	// EscapeJavaScript additionally escapes U+2028 and U+2029, which are
	// valid inside a JSON string but terminate a statement when the
	// output is embedded directly in a <script> block or eval'd as JS.
	EscapeJavaScript
	// EscapeHTMLSafe additionally escapes '/' as "\/" so that the output
	// can be embedded inside an HTML <script> tag without risk of an
	// early "</script>" closing it, on top of the EscapeJavaScript set.
	EscapeHTMLSafe
	// EscapeUnicode escapes the EscapeJSON set and, in addition, every
	// non-ASCII rune as a \uXXXX (or surrogate pair) sequence, producing
	// pure-ASCII output.
	EscapeUnicode
)

func (p EscapeProfile) String() string {
	switch p {
	case EscapeJavaScript:
		return "javascript"
	case EscapeHTMLSafe:
		return "html_safe"
	case EscapeUnicode:
		return "unicode"
	default:
		return "json"
	}
}

// MapMode selects how the object emitter treats repeated keys.
type MapMode int

const (
	// MapsNaive emits every pair in source order without checking for
	// duplicate keys. This is the default.
	MapsNaive MapMode = iota
	// MapsStrict rejects an object whose keys repeat (after escaping)
	// with a KindDuplicateKey error.
	MapsStrict
)

func (m MapMode) String() string {
	if m == MapsStrict {
		return "strict"
	}
	return "naive"
}

// DefaultMaxDepth bounds the walker's recursion when Options.MaxDepth is
// left at zero.
const DefaultMaxDepth = 10000

// Options configures one top-level encode call. The zero value is the
// default configuration: EscapeJSON, MapsNaive, DefaultMaxDepth.
type Options struct {
	Escape   EscapeProfile
	Maps     MapMode
	MaxDepth int
}

// Option mutates an Options value; used by the functional-option
// constructors below, which mirror the teacher's own WithMarshalers/
// WithUnmarshalers functional options (arshal_options.go).
type Option func(*Options)

// WithEscape overrides the escape profile.
func WithEscape(p EscapeProfile) Option {
	return func(o *Options) { o.Escape = p }
}

// WithMaps overrides the duplicate-key policy.
func WithMaps(m MapMode) Option {
	return func(o *Options) { o.Maps = m }
}

// WithMaxDepth overrides the recursion guard.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

func newOptions(opts ...Option) Options {
	o := Options{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
