// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"math"
	"strconv"
)

// AppendFloat appends v to dst as a JSON number per RFC 7159 §6,
// formatted like the ES6 number-to-string conversion. Grounded on the
// teacher's internal/jsonwire/encode.go AppendFloat: same exponential
// thresholds (1e-6, 1e21) and the same "e-09 to e-9" cleanup, which
// together match ECMA-262 6th edition §7.1.12.1 / RFC 8785 §3.2.2.3.
//
// The caller is responsible for rejecting NaN and ±Inf before calling
// this function; see spec.md §4.3 / §9 on the NaN/Infinity defect.
func AppendFloat(dst []byte, v float64) []byte {
	abs := math.Abs(v)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, v, fmt, -1, 64)
	if fmt == 'e' {
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// AppendInt appends the base-10 text of v to dst, sign only if negative.
func AppendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}
