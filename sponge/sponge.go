// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sponge implements the generic Keccak sponge construction: a
// Params-configured absorb/pad/squeeze session built on top of the
// keccakf permutation state. It has no notion of SHA-3 or SHAKE by name;
// those are fixed parameterizations built on this package one layer up.
package sponge

import (
	"io"

	"github.com/go-keccak/keccak/keccakf"
)

// direction tracks whether a Sponge is still absorbing input or has
// already padded and switched to producing output.
type direction int

const (
	absorbing direction = iota
	squeezing
)

// Params fixes the four quantities that define a sponge instance: the
// permutation width, the bitrate, the domain-separation suffix appended before padding, and
// (optionally) a fixed output length. Capacity is derived from the
// permutation width and the rate rather than stored separately, since the
// two must always satisfy Rate + Capacity == Width.
type Params struct {
	// Width is the underlying permutation width (state size in bits).
	Width keccakf.Width
	// Rate is the bitrate r: how many bits are absorbed or squeezed per
	// permutation call.
	Rate int
	// Suffix holds the domain-separation bits, packed LSB-first into the
	// low SuffixBits bits of this byte. These bits are appended to the
	// message before pad10*1 is applied.
	Suffix byte
	// SuffixBits is the number of live bits in Suffix (0 to 8).
	SuffixBits int
	// OutputBits is the fixed output length in bits for a hash-style
	// instance, or 0 for an arbitrary-length (XOF) instance.
	OutputBits int
}

// Capacity returns c = Width - Rate, the sponge's capacity in bits.
func (p Params) Capacity() int { return int(p.Width) - p.Rate }

// Validate checks that p describes a constructible sponge: a positive
// rate strictly less than the permutation width, a suffix that fits in a
// byte, and a non-negative output length.
func (p Params) Validate() error {
	if !p.Width.Valid() {
		return invalidParameterf("width %d is not one of the defined permutation widths", p.Width)
	}
	if p.Rate <= 0 || p.Rate >= int(p.Width) {
		return invalidParameterf("rate %d must be in (0, %d)", p.Rate, p.Width)
	}
	if p.SuffixBits < 0 || p.SuffixBits > 8 {
		return invalidParameterf("suffix bit count %d must be in [0, 8]", p.SuffixBits)
	}
	if p.OutputBits < 0 {
		return invalidParameterf("output length %d must be non-negative", p.OutputBits)
	}
	return nil
}

// Sponge is a stateful absorb/pad/squeeze session over a keccakf.State.
// Like the permutation state it wraps, a Sponge is not safe for
// concurrent use.
type Sponge struct {
	params Params
	state  *keccakf.State

	pos          int // bit offset within the current rate-sized block
	dir          direction
	squeezedBits int // total bits squeezed so far
	bebigokimisa bool
}

// New validates params and returns a freshly reset Sponge ready to absorb.
// bebigokimisa selects the lane-complementing permutation optimization;
// it has no effect on the bytes produced (spec property P5).
func New(params Params, bebigokimisa bool) (*Sponge, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	st, err := keccakf.New(params.Width, bebigokimisa)
	if err != nil {
		return nil, invalidParameterf("constructing permutation state: %v", err)
	}
	return &Sponge{params: params, state: st, bebigokimisa: bebigokimisa}, nil
}

// Params returns the configuration this sponge was constructed with.
func (s *Sponge) Params() Params { return s.params }

// Reset clears the sponge back to its just-constructed, absorbing state.
func (s *Sponge) Reset() {
	s.state.Reset()
	s.pos = 0
	s.dir = absorbing
	s.squeezedBits = 0
}

// Clone returns an independent copy of s, including the full permutation
// state, so that absorption can continue on both the original and the
// copy without interference. This is the basis for hash.Hash's Sum
// (clone, pad, squeeze, leave the original untouched) and for ShakeHash's
// Clone.
func (s *Sponge) Clone() *Sponge {
	cp := *s
	st := *s.state
	cp.state = &st
	return &cp
}

// Write absorbs len(p) whole bytes of message input. It returns len(p),
// nil while the sponge is absorbing (a sponge has no notion of a full
// buffer to reject writes against), and 0 with an Unsupported error once
// squeezing has begun.
func (s *Sponge) Write(p []byte) (int, error) {
	if err := s.WriteBits(p, 8*len(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteBits absorbs the first bitLen bits of p (bit-addressed per the
// rest of this module: bit i is bit i&7 of byte i>>3). It is an error to
// call WriteBits after squeezing has begun.
func (s *Sponge) WriteBits(p []byte, bitLen int) error {
	if s.dir == squeezing {
		return unsupportedf("cannot absorb more input after squeezing has begun")
	}
	if bitLen < 0 || bitLen > 8*len(p) {
		return invalidParameterf("message bit length %d exceeds the %d bits available", bitLen, 8*len(p))
	}
	read := 0
	for read < bitLen {
		room := s.params.Rate - s.pos
		n := minInt(bitLen-read, room)
		s.state.XorBits(s.pos, p, read, n)
		s.pos += n
		read += n
		if s.pos == s.params.Rate {
			s.state.Permute()
			s.pos = 0
		}
	}
	return nil
}

// ReadFrom absorbs an entire io.Reader as message input, streaming it
// through a rate-sized buffer rather than requiring the caller to hold
// the whole message in memory. Any error from r other than io.EOF is
// wrapped as an IoError.
func (s *Sponge) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, s.params.Rate/8)
	if len(buf) == 0 {
		buf = make([]byte, 1)
	}
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if werr := s.WriteBits(buf[:n], 8*n); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, ioError("reading sponge input", err)
		}
	}
}

// finalize appends the domain-separation suffix, applies pad10*1 (spec
// section 4.2.2), and switches the sponge to squeezing. It is idempotent
// in the sense that calling squeezeBits repeatedly after the first
// finalize never re-pads.
func (s *Sponge) finalize() {
	for i := 0; i < s.params.SuffixBits; i++ {
		s.state.XorBits(s.pos, []byte{s.params.Suffix}, i, 1)
		s.pos++
		if s.pos == s.params.Rate {
			s.state.Permute()
			s.pos = 0
		}
	}
	// Opening pad bit. If it lands on the last bit of the block, the
	// closing bit (always written below at rate-1) belongs to the next
	// block, so the block just completed must be permuted first; the two
	// pad bits only ever occupy the same block when rate == 1.
	s.state.XorBits(s.pos, []byte{0x01}, 0, 1)
	s.pos++
	if s.pos == s.params.Rate {
		s.state.Permute()
		s.pos = 0
	}
	s.state.XorBits(s.params.Rate-1, []byte{0x01}, 0, 1)
	s.state.Permute()
	s.pos = 0
	s.dir = squeezing
}

// squeezeBits reads bitLen bits of sponge output into out starting at
// out-bit-offset outBitOff, padding first if the sponge is still
// absorbing. out must be pre-zeroed at every byte a set bit may land in.
func (s *Sponge) squeezeBits(out []byte, outBitOff, bitLen int) {
	if s.dir == absorbing {
		s.finalize()
	}
	read := 0
	for read < bitLen {
		room := s.params.Rate - s.pos
		n := minInt(bitLen-read, room)
		s.state.ExtractBits(out, outBitOff+read, s.pos, n)
		s.pos += n
		read += n
		s.squeezedBits += n
		if s.pos == s.params.Rate {
			s.state.Permute()
			s.pos = 0
		}
	}
}

// Read squeezes len(p) bytes of output, implementing io.Reader for
// arbitrary-length (XOF) use. It never returns an error or a short read.
func (s *Sponge) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.squeezeBits(p, 0, 8*len(p))
	return len(p), nil
}

// Sum clones the sponge (leaving the receiver untouched and still
// absorbing), pads and squeezes Params.OutputBits worth of output from
// the clone, and appends it to b. It panics if OutputBits is 0; use Read
// on an XOF sponge instead.
func (s *Sponge) Sum(b []byte) []byte {
	if s.params.OutputBits == 0 {
		panic("sponge: Sum called on an arbitrary-output sponge; use Read")
	}
	cp := s.Clone()
	out := make([]byte, (s.params.OutputBits+7)/8)
	cp.squeezeBits(out, 0, s.params.OutputBits)
	return append(b, out...)
}

// Size returns the fixed output length in bytes, or 0 for an
// arbitrary-output sponge.
func (s *Sponge) Size() int { return (s.params.OutputBits + 7) / 8 }

// BlockSize returns the bitrate in bytes, rounding down; all eight FIPS
// 202 presets use a byte-aligned rate so this is exact for them.
func (s *Sponge) BlockSize() int { return s.params.Rate / 8 }

// minInt returns the lesser of two integers, to simplify the absorb and
// squeeze loops above.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
