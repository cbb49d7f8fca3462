// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"io"
	"net"
)

// Fragments is a recursively flattened sequence of byte-slice leaves.
// Concatenating the leaves in order yields the encoded JSON document.
// It is defined as [net.Buffers] because that is the standard library's
// vectored-I/O type: it already knows how to write itself out with a
// single writev(2) via [Fragments.WriteTo], which is exactly what
// spec.md's "fragment list for vectored I/O" API shape asks for.
type Fragments net.Buffers

// Len reports the total number of bytes across every leaf.
func (f Fragments) Len() int {
	n := 0
	for _, b := range f {
		n += len(b)
	}
	return n
}

// Flatten concatenates every leaf into a single contiguous buffer. The
// total length is already known via Len, so the buffer is allocated
// once at its final size rather than grown incrementally.
func (f Fragments) Flatten() []byte {
	n := f.Len()
	if n == 0 {
		return nil
	}
	buf := make([]byte, 0, n)
	for _, b := range f {
		buf = append(buf, b...)
	}
	return buf
}

// String is equivalent to Flatten but returns an immutable string.
func (f Fragments) String() string {
	return string(f.Flatten())
}

// WriteTo writes every leaf to w in order, using net.Buffers' writev(2)
// batching when w supports it. Fragments is a distinct named type from
// net.Buffers, so this method (and Read, below) must be forwarded
// explicitly rather than relying on method-set inheritance.
func (f *Fragments) WriteTo(w io.Writer) (int64, error) {
	buffers := (*net.Buffers)(f)
	return buffers.WriteTo(w)
}

// Read implements io.Reader by draining leaves into p, matching
// net.Buffers' Read semantics: each call copies as many bytes as fit in
// p, consuming leaves from the front and splitting a leaf across two
// Read calls when p fills partway through it.
func (f *Fragments) Read(p []byte) (int, error) {
	buffers := (*net.Buffers)(f)
	return buffers.Read(p)
}
