// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontext re-exports the wire-level types of the root json
// package under names that describe their syntactic role rather than
// their Go implementation, mirroring the teacher's jsontext package
// (text.go), which is itself a thin alias layer over the v2 json
// package's internals.
package jsontext

import "github.com/caldera-go/turbojson"

type (
	// Value is an alias for the root package's Fragments: the
	// "fragment list" of spec.md's glossary.
	Value = json.Fragments

	// Options is an alias for the root package's Options.
	Options = json.Options
)

func Encode(v json.Value, opts ...json.Option) (string, error) {
	return json.Encode(v, opts...)
}

func EncodeToValue(v json.Value, opts ...json.Option) (Value, error) {
	return json.EncodeToFragments(v, opts...)
}
