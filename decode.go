// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"github.com/bytedance/sonic"
)

// This file is the decoder's public contract boundary (spec.md §6). The
// core encoder package does not depend on it; decode.go is deliberately
// the only file in this module that imports sonic. Byte-level scanning
// is entirely sonic's job — grounded on dahetaoa-ant2api's
// internal/pkg/json, which wraps a frozen sonic.Config the same way —
// this file's only responsibility is converting the resulting any tree
// into this package's Value tree and applying DecodeOptions.Keys.
var decodeAPI = sonic.Config{
	UseInt64:   true,
	CopyString: true,
}.Froze()

// KeysMode selects how decoded object member names are represented,
// mirroring spec.md §6's `keys` option.
type KeysMode int

const (
	// KeysStrings interns repeated short keys via the shared string
	// interner (see intern.go). This is the default.
	KeysStrings KeysMode = iota
	// KeysCopy always allocates a fresh string per key, never sharing
	// backing storage with the input buffer or the intern cache.
	KeysCopy
)

// DecodeOptions configures Decode. The zero value is KeysStrings.
type DecodeOptions struct {
	Keys KeysMode
}

// Decode implements spec.md §6's decoder contract boundary: it consumes
// a byte string and returns a Value tree or a parse error. Internals
// (token grammar, streaming, validation) are sonic's; this package only
// shapes the result.
func Decode(data []byte, opts ...DecodeOptions) (Value, error) {
	var o DecodeOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	var raw any
	if err := decodeAPI.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var cache *stringInterner
	if o.Keys == KeysStrings {
		cache = new(stringInterner)
	}
	return fromAny(raw, cache), nil
}

// MustDecode is Decode's panic-on-error counterpart.
func MustDecode(data []byte, opts ...DecodeOptions) Value {
	v, err := Decode(data, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func fromAny(v any, cache *stringInterner) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(x)
	case int64:
		return IntFromInt64(x)
	case float64:
		return Float64(x)
	case string:
		if cache != nil {
			return String(cache.intern([]byte(x)))
		}
		return String(x)
	case []any:
		arr := make(Array, len(x))
		for i, e := range x {
			arr[i] = fromAny(e, cache)
		}
		return arr
	case map[string]any:
		obj := make(Object, 0, len(x))
		for k, e := range x {
			if cache != nil {
				k = cache.intern([]byte(k))
			}
			obj = append(obj, Member{Key: k, Value: fromAny(e, cache)})
		}
		return obj
	default:
		return Null{}
	}
}
