// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"testing"

	json "github.com/caldera-go/turbojson"
)

func TestEncode(t *testing.T) {
	v := json.Object{
		{Key: "a", Value: json.IntFromInt64(1)},
	}
	got, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := `{"a":1}`; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeToValue(t *testing.T) {
	v := json.Array{json.IntFromInt64(1), json.IntFromInt64(2)}
	frags, err := EncodeToValue(v)
	if err != nil {
		t.Fatalf("EncodeToValue: %v", err)
	}
	if want := "[1,2]"; frags.String() != want {
		t.Errorf("frags.String() = %q, want %q", frags.String(), want)
	}
}
