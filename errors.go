// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import "strconv"

// TODO: Should we Hyrum-proof error messages so that it is harder
// for faulty code to depend on the exact error message?

const errorPrefix = "json: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("json error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// ErrorKind classifies an [EncodeError].
type ErrorKind int

const (
	// KindMessage is a generic error carrying only a message.
	KindMessage ErrorKind = iota
	// KindDuplicateKey reports a repeated object key under [MapsStrict].
	KindDuplicateKey
	// KindInvalidByte reports a string containing a byte that does not
	// begin a valid UTF-8 sequence.
	KindInvalidByte
	// KindUnrepresentableNumber reports a NaN or infinite float.
	KindUnrepresentableNumber
	// KindDepthExceeded reports recursion past [Options.MaxDepth].
	KindDepthExceeded
	// KindExtensionError wraps an error returned by a user [Encoder].
	KindExtensionError
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate_key"
	case KindInvalidByte:
		return "invalid_byte"
	case KindUnrepresentableNumber:
		return "unrepresentable_number"
	case KindDepthExceeded:
		return "depth_exceeded"
	case KindExtensionError:
		return "extension_error"
	default:
		return "message"
	}
}

// EncodeError is the single structured error type returned by every
// encode entry point in this package. It always aborts the top-level
// call; no partial output is ever handed to the caller alongside it.
type EncodeError struct {
	Kind ErrorKind

	// Key is set for KindDuplicateKey.
	Key string
	// Byte and String are set for KindInvalidByte.
	Byte   byte
	String string

	str string
	err error // wrapped cause, set for KindExtensionError
}

func (e *EncodeError) Error() string {
	switch e.Kind {
	case KindDuplicateKey:
		return errorPrefix + "duplicate key " + strconv.Quote(e.Key) + " in object"
	case KindInvalidByte:
		return errorPrefix + "invalid byte " + strconv.QuoteRune(rune(e.Byte)) + " in string " + strconv.Quote(e.String)
	case KindUnrepresentableNumber:
		return errorPrefix + "unrepresentable number: " + e.str
	case KindExtensionError:
		return errorPrefix + e.str + ": " + e.err.Error()
	default:
		return errorPrefix + e.str
	}
}

func (e *EncodeError) Unwrap() error        { return e.err }
func (e *EncodeError) Is(target error) bool { return e == target || target == Error }

func errDuplicateKey(key string) error {
	return &EncodeError{Kind: KindDuplicateKey, Key: key}
}

func errInvalidByte(b byte, s string) error {
	return &EncodeError{Kind: KindInvalidByte, Byte: b, String: s}
}

func errUnrepresentableNumber(str string) error {
	return &EncodeError{Kind: KindUnrepresentableNumber, str: str}
}

func errDepthExceeded() error {
	return &EncodeError{Kind: KindDepthExceeded, str: "exceeded max encode depth"}
}

func errExtension(cause error) error {
	return &EncodeError{Kind: KindExtensionError, str: "extension hook failed", err: cause}
}

func errMessage(str string) error {
	return &EncodeError{Kind: KindMessage, str: str}
}
