// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

// encodeObject implements spec.md §4.4. Pairs are emitted in the order
// given by the Object value (the caller's source map/struct iteration
// order, already captured at tree-construction time). In MapsStrict
// mode, every key after the first is checked against a visited-key set
// keyed on its already-escaped bytes, grounded on the teacher's
// namespaces.last().insertQuoted duplicate check in arshal_default.go.
func (w *walker) encodeObject(frags *Fragments, obj Object) error {
	literalAppend((*[][]byte)(frags), objOpen)

	var visited map[string]struct{}
	if w.opts.Maps == MapsStrict && len(obj) > 1 {
		visited = make(map[string]struct{}, len(obj))
	}

	for i, member := range obj {
		if i > 0 {
			literalAppend((*[][]byte)(frags), litComma)
		}

		var keyFrag Fragments
		if err := w.encodeKey(&keyFrag, member.Key); err != nil {
			return err
		}

		if visited != nil {
			escaped := keyFrag.String()
			if _, dup := visited[escaped]; dup {
				return errDuplicateKey(member.Key)
			}
			visited[escaped] = struct{}{}
		}

		*frags = append(*frags, keyFrag...)
		literalAppend((*[][]byte)(frags), litColon)

		if err := w.encodeValue(frags, member.Value); err != nil {
			return err
		}
	}

	literalAppend((*[][]byte)(frags), objClose)
	return nil
}
