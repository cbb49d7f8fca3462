// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import "testing"

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"null", Null{}},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"42", IntFromInt64(42)},
		{"-7", IntFromInt64(-7)},
		{"1.5", Float64(1.5)},
		{`"hi"`, String("hi")},
	}
	for _, tt := range tests {
		got, err := Decode([]byte(tt.in))
		if err != nil {
			t.Errorf("Decode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestDecodeArrayAndObject(t *testing.T) {
	got, err := Decode([]byte(`{"a":[1,2,"x"],"b":null}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, ok := got.(Object)
	if !ok {
		t.Fatalf("Decode returned %T, want Object", got)
	}
	if len(obj) != 2 {
		t.Fatalf("len(obj) = %d, want 2", len(obj))
	}
	byKey := make(map[string]Value, len(obj))
	for _, m := range obj {
		byKey[m.Key] = m.Value
	}
	arr, ok := byKey["a"].(Array)
	if !ok || len(arr) != 3 {
		t.Fatalf(`byKey["a"] = %#v, want a 3-element Array`, byKey["a"])
	}
	if _, ok := byKey["b"].(Null); !ok {
		t.Fatalf(`byKey["b"] = %#v, want Null`, byKey["b"])
	}
}

func TestDecodeRoundTripsThroughEncode(t *testing.T) {
	in := `{"a":1,"b":[true,false,null],"c":"text"}`
	v, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Re-decoding the re-encoded form must produce the same tree: key
	// order from a map-backed decode isn't guaranteed to match the
	// source text, so comparing via a second Decode avoids relying on
	// an incidental ordering.
	v2, err := Decode([]byte(out))
	if err != nil {
		t.Fatalf("Decode(re-encoded): %v", err)
	}
	out2, err := Encode(v2)
	if err != nil {
		t.Fatalf("Encode(round 2): %v", err)
	}
	if out != out2 {
		t.Errorf("round-trip not stable: %q != %q", out, out2)
	}
}

func TestDecodeKeysCopyPreservesKey(t *testing.T) {
	got, err := Decode([]byte(`{"samekey":1}`), DecodeOptions{Keys: KeysCopy})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj := got.(Object)
	if len(obj) != 1 || obj[0].Key != "samekey" {
		t.Fatalf("Decode = %#v, want one member keyed \"samekey\"", obj)
	}
}

func TestMustDecodePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustDecode: expected panic on malformed input")
		}
	}()
	MustDecode([]byte(`{not json`))
}
