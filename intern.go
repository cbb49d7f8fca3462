// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"encoding/binary"
	"math/bits"
)

// stringInterner backs DecodeOptions.Keys's KeysStrings mode (decode.go):
// it gives repeated short strings decoded out of the same document a
// shared backing array instead of a fresh allocation each time sonic
// hands this package a []byte to convert to string.
type stringInterner [256]string // 256*unsafe.Sizeof(string("")) => 4KiB

const (
	internMinLen = 2   // single-byte strings are already interned by the runtime
	internMaxLen = 256 // large enough for UUIDs, IPv6 addresses, SHA-256 checksums
)

// intern returns the string form of b, reusing a cached string of equal
// content when one is already in c. Strings outside [internMinLen,
// internMaxLen] bypass the cache entirely and are simply allocated.
func (c *stringInterner) intern(b []byte) string {
	if c == nil || len(b) < internMinLen || len(b) > internMaxLen {
		return string(b)
	}

	slot := &c[fingerprint(b)%uint64(len(c))]
	if *slot == string(b) {
		return *slot
	}
	s := string(b)
	*slot = s
	return s
}

// fingerprint hashes the fixed-width prefix and suffix of b so that
// hashing cost does not grow with len(b) within the cached range.
func fingerprint(b []byte) uint64 {
	var lo, hi uint64
	switch {
	case len(b) >= 8:
		lo = binary.LittleEndian.Uint64(b[:8])
		hi = binary.LittleEndian.Uint64(b[len(b)-8:])
	case len(b) >= 4:
		lo = uint64(binary.LittleEndian.Uint32(b[:4]))
		hi = uint64(binary.LittleEndian.Uint32(b[len(b)-4:]))
	case len(b) >= 2:
		lo = uint64(binary.LittleEndian.Uint16(b[:2]))
		hi = uint64(binary.LittleEndian.Uint16(b[len(b)-2:]))
	}
	n := uint64(len(b))
	return mix128(lo^n, hi^n) // fold the length into the hash
}

// mix128 compresses two uint64s into one, following the same reduced
// XXH64 round the teacher's intern cache used (prime constants and
// rotate/multiply schedule identical to XXH64's compression step,
// final avalanche mix skipped for speed):
//
//	var b [16]byte
//	binary.LittleEndian.PutUint64(b[:8], lo)
//	binary.LittleEndian.PutUint64(b[8:], hi)
//	return xxhash.Sum64(b[:]) // modulo the skipped avalanche step
func mix128(lo, hi uint64) uint64 {
	const (
		prime1 = 0x9e3779b185ebca87
		prime2 = 0xc2b2ae3d27d4eb4f
		prime4 = 0x85ebca77c2b2ae63
		prime5 = 0x27d4eb2f165667c5
	)
	h := prime5 + uint64(16)
	h ^= bits.RotateLeft64(lo*prime2, 31) * prime1
	h = bits.RotateLeft64(h, 27)*prime1 + prime4
	h ^= bits.RotateLeft64(hi*prime2, 31) * prime1
	h = bits.RotateLeft64(h, 27)*prime1 + prime4
	return h
}
