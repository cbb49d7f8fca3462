// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math"

	"github.com/caldera-go/turbojson/internal/jsonwire"
)

var (
	litNull  = []byte("null")
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litQuote = []byte(`"`)
	litColon = []byte(":")
	litComma = []byte(",")

	objOpen  = []byte("{")
	objClose = []byte("}")
	arrOpen  = []byte("[")
	arrClose = []byte("]")
)

func profileFor(p EscapeProfile) *jsonwire.Profile {
	switch p {
	case EscapeJavaScript:
		return &jsonwire.ProfileJavaScript
	case EscapeHTMLSafe:
		return &jsonwire.ProfileHTMLSafe
	case EscapeUnicode:
		return &jsonwire.ProfileUnicode
	default:
		return &jsonwire.ProfileJSON
	}
}

// appendEscapedString is the root package's entry point into the
// jsonwire escaper: it opens and closes the surrounding quotes and
// converts any InvalidByteError into this package's EncodeError.
func appendEscapedString(frags *Fragments, s string, profile EscapeProfile) error {
	sink := (*[][]byte)(frags)
	literalAppend(sink, litQuote)
	if err := jsonwire.AppendEscapedString(sink, s, profileFor(profile)); err != nil {
		if ibe, ok := err.(*jsonwire.InvalidByteError); ok {
			return errInvalidByte(ibe.Byte, ibe.Original)
		}
		return err
	}
	literalAppend(sink, litQuote)
	return nil
}

func literalAppend(dst *[][]byte, b []byte) {
	*dst = append(*dst, b)
}

// walker carries the per-call configuration and recursion depth; one is
// constructed per top-level Encode* call and never escapes it, except
// that EncoderPool keeps its walkers and resets them on each call.
type walker struct {
	opts  Options
	depth int
}

// encodeValue is the value walker of spec.md §4.3: it dispatches on v's
// concrete kind and routes it to the matching emitter.
func (w *walker) encodeValue(frags *Fragments, v Value) error {
	w.depth++
	if w.depth > w.opts.MaxDepth {
		return errDepthExceeded()
	}
	defer func() { w.depth-- }()

	switch x := v.(type) {
	case nil:
		literalAppend((*[][]byte)(frags), litNull)
		return nil
	case Null:
		literalAppend((*[][]byte)(frags), litNull)
		return nil
	case Bool:
		if x {
			literalAppend((*[][]byte)(frags), litTrue)
		} else {
			literalAppend((*[][]byte)(frags), litFalse)
		}
		return nil
	case Int:
		if x.big != nil {
			*frags = append(*frags, []byte(x.big.String()))
		} else {
			*frags = append(*frags, jsonwire.AppendInt(nil, x.small))
		}
		return nil
	case Float64:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errUnrepresentableNumber(formatBadFloat(f))
		}
		*frags = append(*frags, jsonwire.AppendFloat(nil, f))
		return nil
	case String:
		return appendEscapedString(frags, string(x), w.opts.Escape)
	case Array:
		return w.encodeArray(frags, x)
	case Object:
		return w.encodeObject(frags, x)
	case Ext:
		return w.encodeExt(frags, x)
	default:
		return errMessage("unsupported value type in encode tree")
	}
}

func formatBadFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, +1):
		return "+Inf"
	default:
		return "-Inf"
	}
}

func (w *walker) encodeExt(frags *Fragments, x Ext) error {
	out, err := x.Value.EncodeJSON(w.opts)
	if err != nil {
		return errExtension(err)
	}
	*frags = append(*frags, out...)
	return nil
}

// encodeKey coerces a Member's key to escaped text per spec.md §4.4
// step 1. Keys are already plain Go strings in this package's Value
// model (see value.go's Member), so coercion is just escaping.
func (w *walker) encodeKey(frags *Fragments, key string) error {
	return appendEscapedString(frags, key, w.opts.Escape)
}

func newWalker(opts Options) *walker {
	return &walker{opts: opts}
}

// Encode implements spec.md §6's `encode(value, opts) -> ok(text) | err(E)`.
func Encode(v Value, opts ...Option) (string, error) {
	frags, err := EncodeToFragments(v, opts...)
	if err != nil {
		return "", err
	}
	return frags.String(), nil
}

// MustEncode implements spec.md §6's `encode!`.
func MustEncode(v Value, opts ...Option) string {
	s, err := Encode(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// EncodeToFragments implements spec.md §6's `encode_to_iodata`.
func EncodeToFragments(v Value, opts ...Option) (Fragments, error) {
	o := newOptions(opts...)
	w := newWalker(o)
	var frags Fragments
	if err := w.encodeValue(&frags, v); err != nil {
		return nil, err
	}
	return frags, nil
}

// MustEncodeToFragments implements spec.md §6's `encode_to_iodata!`.
func MustEncodeToFragments(v Value, opts ...Option) Fragments {
	frags, err := EncodeToFragments(v, opts...)
	if err != nil {
		panic(err)
	}
	return frags
}
