// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file defines the ShakeHash interface and the four
// extendable-output-function instances: SHAKE128, SHAKE256,
// RawSHAKE128, and RawSHAKE256.
import (
	"io"

	"github.com/go-keccak/keccak/keccakf"
	"github.com/go-keccak/keccak/sponge"
)

const (
	shakeSuffix    = 0x1f // domain suffix "1111" (LSB-first), 4 bits
	rawShakeSuffix = 0x03 // domain suffix "11" (LSB-first), 2 bits
)

// ShakeHash defines the interface to hash functions that support
// arbitrary-length output.
type ShakeHash interface {
	// Write absorbs more data into the hash's state. It returns an error
	// if called after output has already been read from it.
	io.Writer

	// Read reads more output from the hash; reading affects the hash's
	// state. (ShakeHash.Read is thus very different from Hash.Sum.) It
	// never returns an error.
	io.Reader

	// Clone returns a copy of the ShakeHash in its current state.
	Clone() ShakeHash

	// Reset resets the ShakeHash to its initial state.
	Reset()
}

type shakeState struct {
	s *sponge.Sponge
}

var _ ShakeHash = (*shakeState)(nil)

func newXOF(rateBits int, suffix byte, suffixBits int) *shakeState {
	s, err := sponge.New(sponge.Params{
		Width:      keccakf.Width1600,
		Rate:       rateBits,
		Suffix:     suffix,
		SuffixBits: suffixBits,
		OutputBits: 0,
	}, false)
	if err != nil {
		panic(err)
	}
	return &shakeState{s: s}
}

func (d *shakeState) Write(p []byte) (int, error) { return d.s.Write(p) }
func (d *shakeState) Read(p []byte) (int, error)  { return d.s.Read(p) }
func (d *shakeState) Reset()                      { d.s.Reset() }

func (d *shakeState) Clone() ShakeHash {
	return &shakeState{s: d.s.Clone()}
}

// NewShake128 creates a new SHAKE128 variable-output-length ShakeHash.
// Its generic security strength is 128 bits against all attacks if at
// least 32 bytes of its output are used.
func NewShake128() ShakeHash { return newXOF(1344, shakeSuffix, 4) }

// NewShake256 creates a new SHAKE256 variable-output-length ShakeHash.
// Its generic security strength is 256 bits against all attacks if at
// least 64 bytes of its output are used.
func NewShake256() ShakeHash { return newXOF(1088, shakeSuffix, 4) }

// NewRawShake128 creates a new RawSHAKE128 ShakeHash: the same
// permutation and rate as SHAKE128 but with the unpadded two-bit domain
// suffix rather than SHAKE's four-bit suffix. It exists to let other
// constructions apply their own domain separation on top of Keccak, and
// should not be used directly as a general-purpose hash function.
func NewRawShake128() ShakeHash { return newXOF(1344, rawShakeSuffix, 2) }

// NewRawShake256 creates a new RawSHAKE256 ShakeHash.
func NewRawShake256() ShakeHash { return newXOF(1088, rawShakeSuffix, 2) }

// ShakeSum128 writes an arbitrary-length SHAKE128 digest of data into hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length SHAKE256 digest of data into hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Read(hash)
}
