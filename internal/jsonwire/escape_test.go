// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"testing"
)

func appendEscaped(t *testing.T, s string, p *Profile) (string, error) {
	t.Helper()
	var frags [][]byte
	err := AppendEscapedString(&frags, s, p)
	var out []byte
	for _, f := range frags {
		out = append(out, f...)
	}
	return string(out), err
}

func TestAppendEscapedStringCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"a\"b", "a\\\"b"},
		{"a\\b", "a\\\\b"},
		{"a\nb", "a\\nb"},
		{"a\tb", "a\\tb"},
		{"a\x00b", "a\\u0000b"},
		{"a\x1fb", "a\\u001Fb"},
		{"héllo", "héllo"}, // non-ASCII passes through verbatim in the json profile
		{"  ", "  "},
	}
	for _, tt := range tests {
		got, err := appendEscaped(t, tt.in, &ProfileJSON)
		if err != nil {
			t.Errorf("AppendEscapedString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AppendEscapedString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendEscapedStringLineSeparators(t *testing.T) {
	in := "a b c"
	want := "a\\u2028b\\u2029c"
	for _, p := range []*Profile{&ProfileJavaScript, &ProfileHTMLSafe} {
		got, err := appendEscaped(t, in, p)
		if err != nil {
			t.Fatalf("AppendEscapedString: %v", err)
		}
		if got != want {
			t.Errorf("AppendEscapedString(%q) = %q, want %q", in, got, want)
		}
	}

	// The json profile passes U+2028/U+2029 through verbatim.
	got, err := appendEscaped(t, in, &ProfileJSON)
	if err != nil {
		t.Fatalf("AppendEscapedString: %v", err)
	}
	if got != in {
		t.Errorf("AppendEscapedString(%q) with ProfileJSON = %q, want verbatim", in, got)
	}
}

func TestAppendEscapedStringHTMLSafeSlash(t *testing.T) {
	got, err := appendEscaped(t, "</script>", &ProfileHTMLSafe)
	if err != nil {
		t.Fatalf("AppendEscapedString: %v", err)
	}
	if want := "<\\/script>"; got != want {
		t.Errorf("AppendEscapedString(%q) = %q, want %q", "</script>", got, want)
	}

	// The json profile must not touch '/'.
	got, err = appendEscaped(t, "</script>", &ProfileJSON)
	if err != nil {
		t.Fatalf("AppendEscapedString: %v", err)
	}
	if want := "</script>"; got != want {
		t.Errorf("AppendEscapedString(%q) = %q, want %q", "</script>", got, want)
	}
}

func TestAppendEscapedStringUnicodeProfile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"café", "caf\\u00e9"},
		{"\U0001F600", "\\ud83d\\ude00"}, // astral code point: UTF-16 surrogate pair
	}
	for _, tt := range tests {
		got, err := appendEscaped(t, tt.in, &ProfileUnicode)
		if err != nil {
			t.Errorf("AppendEscapedString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AppendEscapedString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendEscapedStringInvalidByte(t *testing.T) {
	_, err := appendEscaped(t, "a\xffb", &ProfileJSON)
	if err == nil {
		t.Fatal("AppendEscapedString: got nil error, want InvalidByteError")
	}
	ibe, ok := err.(*InvalidByteError)
	if !ok {
		t.Fatalf("AppendEscapedString: got %T, want *InvalidByteError", err)
	}
	if ibe.Byte != 0xff {
		t.Errorf("InvalidByteError.Byte = %#x, want 0xff", ibe.Byte)
	}
}

func TestAppendEscapedStringIdempotentQuoting(t *testing.T) {
	// Escaping an already-escaped string must escape the backslashes
	// themselves rather than reinterpreting the escape sequences, so
	// that double-encoding is never silently lossy.
	once, err := appendEscaped(t, "a\nb", &ProfileJSON)
	if err != nil {
		t.Fatalf("AppendEscapedString: %v", err)
	}
	twice, err := appendEscaped(t, once, &ProfileJSON)
	if err != nil {
		t.Fatalf("AppendEscapedString: %v", err)
	}
	if want := "a\\\\nb"; twice != want {
		t.Errorf("AppendEscapedString(%q) = %q, want %q", once, twice, want)
	}
}
