// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the four fixed-output-length SHA3 instances, each
// implementing the standard hash.Hash interface. The sponge mechanics
// live in package sponge; this file only fixes (rate, suffix, output
// length) and wires them into a hash.Hash.
package sha3

import (
	"hash"

	"github.com/go-keccak/keccak/keccakf"
	"github.com/go-keccak/keccak/sponge"
)

const sha3Suffix = 0x06 // domain suffix "01" (LSB-first), 2 bits

type digest struct {
	s *sponge.Sponge
}

var _ hash.Hash = (*digest)(nil)

func newFixed(rateBits, outputBits int) *digest {
	s, err := sponge.New(sponge.Params{
		Width:      keccakf.Width1600,
		Rate:       rateBits,
		Suffix:     sha3Suffix,
		SuffixBits: 2,
		OutputBits: outputBits,
	}, false)
	if err != nil {
		// rateBits/outputBits are compile-time constants below; a
		// validation failure here means this package itself is broken.
		panic(err)
	}
	return &digest{s: s}
}

// New224 creates a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newFixed(1152, 224) }

// New256 creates a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newFixed(1088, 256) }

// New384 creates a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newFixed(832, 384) }

// New512 creates a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newFixed(576, 512) }

func (d *digest) Write(p []byte) (int, error) { return d.s.Write(p) }
func (d *digest) Sum(in []byte) []byte        { return d.s.Sum(in) }
func (d *digest) Reset()                      { d.s.Reset() }
func (d *digest) Size() int                   { return d.s.Size() }
func (d *digest) BlockSize() int              { return d.s.BlockSize() }

// Sum224 computes the SHA3-224 digest of data.
func Sum224(data []byte) (sum [28]byte) {
	h := New224()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum256 computes the SHA3-256 digest of data.
func Sum256(data []byte) (sum [32]byte) {
	h := New256()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum384 computes the SHA3-384 digest of data.
func Sum384(data []byte) (sum [48]byte) {
	h := New384()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}

// Sum512 computes the SHA3-512 digest of data.
func Sum512(data []byte) (sum [64]byte) {
	h := New512()
	h.Write(data)
	copy(sum[:], h.Sum(nil))
	return
}
