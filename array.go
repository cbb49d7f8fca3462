// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

// encodeArray implements spec.md §4.5: '[' , elements separated by ',',
// ']'. An empty array emits exactly "[]".
func (w *walker) encodeArray(frags *Fragments, a Array) error {
	literalAppend((*[][]byte)(frags), arrOpen)
	for i, elem := range a {
		if i > 0 {
			literalAppend((*[][]byte)(frags), litComma)
		}
		if err := w.encodeValue(frags, elem); err != nil {
			return err
		}
	}
	literalAppend((*[][]byte)(frags), arrClose)
	return nil
}
