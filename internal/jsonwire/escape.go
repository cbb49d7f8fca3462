// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"unicode/utf8"
	"unsafe"
)

// Sink is the destination a string escape run appends to. It is
// satisfied by *[][]byte, which is the underlying type of the root
// package's Fragments (net.Buffers, itself [][]byte) — callers convert
// with (*[][]byte)(&frags) rather than this package importing the root
// package, which would create an import cycle.
type Sink = *[][]byte

// unsafeStringToBytes aliases s's backing storage as a []byte without
// copying, grounded on freekieb7-gravel's unsafeStringToBytes. The
// returned slice must never be mutated; chunk only ever hands it to
// append on a *[][]byte, never to anything that writes through it.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.StringData(s))), len(s))
}

func chunk(dst Sink, src string, off, n int) {
	if n > 0 {
		*dst = append(*dst, unsafeStringToBytes(src[off:off+n]))
	}
}

func literal(dst Sink, b []byte) {
	*dst = append(*dst, b)
}

var (
	escBackslashQuote = []byte(`\"`)
	escBackslashSlash = []byte(`\\`)
	escBackslashFSlsh = []byte(`\/`)
	escBackspace      = []byte(`\b`)
	escTab            = []byte(`\t`)
	escNewline        = []byte(`\n`)
	escFormFeed       = []byte(`\f`)
	escCarriageReturn = []byte(`\r`)

	escLineSep      = []byte{'\\', 'u', '2', '0', '2', '8'}
	escParagraphSep = []byte{'\\', 'u', '2', '0', '2', '9'}
)

const hexDigits = "0123456789abcdef"

// hexDigitsUpper is used only for the control-character \u00XX escape:
// spec.md §8 requires uppercase hex there in every profile, unlike the
// non-ASCII \uXXXX escapes below, where either case is permitted as
// long as it's consistent.
const hexDigitsUpper = "0123456789ABCDEF"

// appendU00Hex returns the literal \u00XX sequence for a control byte.
func appendU00Hex(c byte) []byte {
	return []byte{'\\', 'u', '0', '0', hexDigitsUpper[c>>4], hexDigitsUpper[c&0xf]}
}

// appendUTF16Hex returns the literal \uXXXX sequence for a UTF-16 code unit.
func appendUTF16Hex(x uint16) []byte {
	return []byte{
		'\\', 'u',
		hexDigits[(x>>12)&0xf], hexDigits[(x>>8)&0xf],
		hexDigits[(x>>4)&0xf], hexDigits[(x>>0)&0xf],
	}
}

func shortEscapeBytes(v action) []byte {
	switch v {
	case '"':
		return escBackslashQuote
	case '\\':
		return escBackslashSlash
	case '/':
		return escBackslashFSlsh
	case 'b':
		return escBackspace
	case 't':
		return escTab
	case 'n':
		return escNewline
	case 'f':
		return escFormFeed
	case 'r':
		return escCarriageReturn
	}
	panic("jsonwire: unreachable short escape")
}

// InvalidByteError is returned by AppendEscapedString when src contains
// a byte >= 0x80 that does not begin a valid UTF-8 sequence. The escaper
// halts immediately: no bytes from the offending point onward are
// appended to dst, matching spec.md §4.2's fail-fast requirement.
type InvalidByteError struct {
	Byte     byte
	Original string
}

func (e *InvalidByteError) Error() string {
	return "jsonwire: invalid byte in string"
}

// AppendEscapedString runs the two-state (scan / chunk) escaper
// described in spec.md §4.2 over src, appending the escaped form
// (without surrounding quotes) to dst. Runs of bytes that need no
// escaping are appended as shared references into src — no per-byte
// copying — and a run only ever closes when an escape is emitted or
// input ends.
func AppendEscapedString(dst Sink, src string, p *Profile) error {
	skip := 0 // start offset of the pending chunk run
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		if c < utf8.RuneSelf {
			act := p.Dispatch(c)
			switch act {
			case actionChunk:
				i++
				continue
			case actionUnicodeHex:
				chunk(dst, src, skip, i-skip)
				literal(dst, appendU00Hex(c))
				i++
				skip = i
				continue
			default:
				chunk(dst, src, skip, i-skip)
				literal(dst, shortEscapeBytes(act))
				i++
				skip = i
				continue
			}
		}

		// Multi-byte UTF-8 sequence.
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return &InvalidByteError{Byte: src[i], Original: src}
		}

		if p.EscapesAllNonASCII() {
			chunk(dst, src, skip, i-skip)
			appendUnicodeEscape(dst, r)
			i += size
			skip = i
			continue
		}

		if p.EscapesLineSeparators() && (r == '\u2028' || r == '\u2029') {
			chunk(dst, src, skip, i-skip)
			if r == '\u2028' {
				literal(dst, escLineSep)
			} else {
				literal(dst, escParagraphSep)
			}
			i += size
			skip = i
			continue
		}

		// Safe multi-byte rune: extend the current chunk run.
		i += size
	}
	chunk(dst, src, skip, i-skip)
	return nil
}

// appendUnicodeEscape implements spec.md §4.2.2's unicode profile table,
// including the corrected (non-buggy) surrogate pair math: high
// surrogate 0xD800|(c>>10), low surrogate 0xDC00|(c&0x3FF).
func appendUnicodeEscape(dst Sink, r rune) {
	switch {
	case r < 0x10000:
		literal(dst, appendUTF16Hex(uint16(r)))
	default:
		c := r - 0x10000
		hi := uint16(0xD800 | (c >> 10))
		lo := uint16(0xDC00 | (c & 0x3FF))
		literal(dst, appendUTF16Hex(hi))
		literal(dst, appendUTF16Hex(lo))
	}
}
