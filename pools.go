// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import "sync"

// EncoderPool is spec.md's supplemented buffer-reuse feature: an
// opt-in pool of walkers and their backing Fragments slices, grounded
// on the teacher's sync.Pool-based encoderPool/decoderPool in this
// same file. Unlike the teacher, this package has no persistent
// *Encoder type to pool (encodeValue is a pure tree walk), so what's
// pooled is the walker plus the []byte slices backing its Fragments.
type EncoderPool struct {
	pool sync.Pool
}

type pooledWalker struct {
	w     walker
	frags Fragments
}

// NewEncoderPool constructs an EncoderPool. The zero value is also
// ready to use.
func NewEncoderPool() *EncoderPool {
	return &EncoderPool{}
}

func (p *EncoderPool) get() *pooledWalker {
	if v := p.pool.Get(); v != nil {
		return v.(*pooledWalker)
	}
	return new(pooledWalker)
}

// Encode behaves like the package-level Encode, but reuses a walker
// and its Fragments backing array across calls on the same pool,
// avoiding an allocation per call in steady-state high-throughput
// encoding loops (spec.md §5's repeated-small-encodes scenario).
func (p *EncoderPool) Encode(v Value, opts ...Option) (string, error) {
	frags, err := p.EncodeToFragments(v, opts...)
	if err != nil {
		return "", err
	}
	return frags.String(), nil
}

// EncodeToFragments is EncoderPool's Fragments-returning form. The
// returned Fragments shares storage with the pool and is invalidated
// by the next call made against the same pool; callers that need to
// retain the result past that point must copy it first, e.g. via
// Fragments.Flatten, which already copies into a fresh buffer.
func (p *EncoderPool) EncodeToFragments(v Value, opts ...Option) (Fragments, error) {
	pw := p.get()
	pw.w = walker{opts: newOptions(opts...)}
	pw.frags = pw.frags[:0]
	if err := pw.w.encodeValue(&pw.frags, v); err != nil {
		p.pool.Put(pw)
		return nil, err
	}
	out := pw.frags
	p.pool.Put(pw)
	return out, nil
}
