package keccakf

import "fmt"

// State is a Keccak-f permutation state: the 5x5 array of w-bit lanes for
// one of the seven defined widths b = 25w. Lanes are stored in the low w
// bits of a uint64; the remaining high bits are always zero outside of an
// in-progress operation (spec section 3's state invariant).
//
// A State is created zeroed, mutated only by its owning sponge, and is not
// safe for concurrent use: exactly one goroutine may drive absorb/permute/
// squeeze calls on a given instance at a time.
type State struct {
	lanes [25]uint64 // lanes[y*5+x] holds S[x,y]

	width          Width
	laneBits       int
	laneMask       uint64
	rotation       [5][5]uint
	roundConstants []uint64
	bebigokimisa   bool
}

// New creates a zeroed permutation state for the given width. bebigokimisa
// selects whether Permute uses the lane-complementing chi optimization
// (spec section 4.1.1); both settings produce identical output (spec
// property P5).
func New(width Width, bebigokimisa bool) (*State, error) {
	if !width.Valid() {
		return nil, fmt.Errorf("keccakf: width %d is not one of the seven defined Keccak-f widths", width)
	}
	laneBits := width.LaneBits()
	return &State{
		width:          width,
		laneBits:       laneBits,
		laneMask:       laneMask(laneBits),
		rotation:       rotationFor(laneBits),
		roundConstants: roundConstantsFor(laneBits, width.Rounds()),
		bebigokimisa:   bebigokimisa,
	}, nil
}

// Width returns the total state width b = 25w.
func (s *State) Width() Width { return s.width }

// LaneBits returns the lane width w.
func (s *State) LaneBits() int { return s.laneBits }

// Reset sets every lane to zero.
func (s *State) Reset() {
	for i := range s.lanes {
		s.lanes[i] = 0
	}
}

// idx returns the lane-array index for state position (x, y).
func idx(x, y int) int { return y*5 + x }

// loadLE reads a little-endian unsigned integer from b (1 to 8 bytes).
func loadLE(b []byte) uint64 {
	var v uint64
	for i, c := range b {
		v |= uint64(c) << uint(8*i)
	}
	return v
}

// storeLE writes v as a little-endian unsigned integer into b (1 to 8
// bytes), writing only the low 8*len(b) bits of v.
func storeLE(b []byte, v uint64) {
	for i := range b {
		b[i] = byte(v >> uint(8*i))
	}
}

// bitAt returns the value (0 or 1) of state bit n, where n addresses lanes
// in x-then-y order and bits within a lane from the LSB up: lane (0,0)
// bits 0..w-1, then lane (1,0) bits 0..w-1, and so on through lane (4,4).
func (s *State) bitAt(n int) uint64 {
	w := s.laneBits
	lane, z := n/w, uint(n%w)
	x, y := lane%5, lane/5
	return (s.lanes[idx(x, y)] >> z) & 1
}

// xorBitAt XORs a single bit into state bit n (see bitAt for addressing).
func (s *State) xorBitAt(n int, bit uint64) {
	w := s.laneBits
	lane, z := n/w, uint(n%w)
	x, y := lane%5, lane/5
	s.lanes[idx(x, y)] ^= bit << z
}

// XorBits XORs bitLen bits read from buf starting at bit offset bufBitOff
// into the state starting at state bit offset stateBitOff (spec section 6
// addressing: bit i of a byte string is bit i&7 of byte i>>3). stateBitOff
// and stateBitOff+bitLen must lie within [0, 25*w]. Neither offset need be
// byte- or lane-aligned; a byte-aligned, whole-lane fast path is used
// whenever one applies.
func (s *State) XorBits(stateBitOff int, buf []byte, bufBitOff, bitLen int) {
	if stateBitOff+bitLen > 25*s.laneBits {
		panic("keccakf: XorBits: range exceeds state width")
	}
	w := s.laneBits
	n := 0
	for n < bitLen {
		sOff := stateBitOff + n
		bOff := bufBitOff + n
		remaining := bitLen - n
		if sOff%w == 0 && remaining >= w && w%8 == 0 && bOff%8 == 0 && bOff/8+w/8 <= len(buf) {
			lane := sOff / w
			x, y := lane%5, lane/5
			word := loadLE(buf[bOff/8 : bOff/8+w/8])
			s.lanes[idx(x, y)] ^= word & s.laneMask
			n += w
			continue
		}
		bit := (buf[bOff>>3] >> uint(bOff&7)) & 1
		s.xorBitAt(sOff, uint64(bit))
		n++
	}
}

// ExtractBits copies bitLen bits from the state, starting at state bit
// offset stateBitOff, into out starting at bit offset outBitOff. out must
// be pre-zeroed at every byte a high bit may land in; this method only
// sets bits, never clears them.
func (s *State) ExtractBits(out []byte, outBitOff, stateBitOff, bitLen int) {
	if stateBitOff+bitLen > 25*s.laneBits {
		panic("keccakf: ExtractBits: range exceeds state width")
	}
	w := s.laneBits
	n := 0
	for n < bitLen {
		sOff := stateBitOff + n
		oOff := outBitOff + n
		remaining := bitLen - n
		if sOff%w == 0 && remaining >= w && w%8 == 0 && oOff%8 == 0 && oOff/8+w/8 <= len(out) {
			lane := sOff / w
			x, y := lane%5, lane/5
			storeLE(out[oOff/8:oOff/8+w/8], s.lanes[idx(x, y)]&s.laneMask)
			n += w
			continue
		}
		bit := s.bitAt(sOff)
		if bit != 0 {
			out[oOff>>3] |= 1 << uint(oOff&7)
		}
		n++
	}
}
