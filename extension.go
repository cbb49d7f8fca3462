// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Encoder is the user-type → JSON contract (spec.md §4.6). Implementing
// it on a type and wrapping a value of that type in Ext gives the
// implementation full control over, and full responsibility for, that
// value's encoded form: its output is spliced into the surrounding
// Fragments unchanged, never re-escaped or re-validated, exactly as the
// teacher's MarshalerTo hands raw tokens to jsontext.Encoder without a
// second pass.
type Encoder interface {
	EncodeJSON(opts Options) (Fragments, error)
}

// Raw is a pre-rendered JSON fragment marker: bytes that are already
// valid JSON and must be spliced in as-is. It implements Encoder so it
// can be used directly as an Ext payload.
type Raw []byte

func (r Raw) EncodeJSON(Options) (Fragments, error) {
	return Fragments{[]byte(r)}, nil
}

// encoderFunc adapts a plain function to the Encoder interface.
type encoderFunc func(Options) (Fragments, error)

func (f encoderFunc) EncodeJSON(o Options) (Fragments, error) { return f(o) }

// quotedString is a small helper shared by the built-in extensions
// below: it routes text through the ordinary string escaper for the
// active profile, matching spec.md §4.3's "atom-like symbolic value"
// rule (convert to text, then escape).
func quotedString(s string, o Options) (Fragments, error) {
	var frags Fragments
	if err := appendEscapedString(&frags, s, o.Escape); err != nil {
		return nil, err
	}
	return frags, nil
}

// Date is a calendar date with no time-of-day or zone component.
type Date struct{ time.Time }

func (d Date) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(d.Time.Format("2006-01-02"), o)
}

// TimeOfDay is a wall-clock time with no date or zone component.
type TimeOfDay struct{ time.Time }

func (t TimeOfDay) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(t.Time.Format("15:04:05.999999999"), o)
}

// DateTime is a calendar date and wall-clock time with no zone
// component (a "naive" datetime).
type DateTime struct{ time.Time }

func (t DateTime) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(t.Time.Format("2006-01-02T15:04:05.999999999"), o)
}

// Instant is a zoned point in time, formatted as full ISO-8601/RFC 3339.
type Instant struct{ time.Time }

func (t Instant) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(t.Time.Format(time.RFC3339Nano), o)
}

// Decimal is an arbitrary-precision decimal, formatted as a double-quoted
// normal decimal string via github.com/shopspring/decimal.
type Decimal struct{ decimal.Decimal }

func (d Decimal) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(d.Decimal.String(), o)
}

// UUID is the spec's "atom-like symbolic value" made concrete: a value
// that names itself as text (its canonical hyphenated form) without
// being a Go string.
type UUID struct{ uuid.UUID }

func (u UUID) EncodeJSON(o Options) (Fragments, error) {
	return quotedString(u.UUID.String(), o)
}
