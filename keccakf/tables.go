package keccakf

// Width is a Keccak-f permutation width in bits: 25*w for lane width
// w in {1,2,4,8,16,32,64}.
type Width int

// The seven permutation widths defined by the Keccak/FIPS 202 family.
const (
	Width25   Width = 25
	Width50   Width = 50
	Width100  Width = 100
	Width200  Width = 200
	Width400  Width = 400
	Width800  Width = 800
	Width1600 Width = 1600
)

// LaneBits returns the lane width w for this permutation width (b = 25w).
func (b Width) LaneBits() int { return int(b) / 25 }

// Valid reports whether b is one of the seven defined permutation widths.
func (b Width) Valid() bool {
	switch b {
	case Width25, Width50, Width100, Width200, Width400, Width800, Width1600:
		return true
	}
	return false
}

// Rounds returns rounds(w) = 12 + 2*log2(w) for this width's lane size.
func (b Width) Rounds() int {
	w := b.LaneBits()
	l := 0
	for (1 << uint(l)) < w {
		l++
	}
	return 12 + 2*l
}

// rotation64 is the reference rotation-offset table for w=64, stored
// row-major as written in the spec: rotation64[y][x] is the offset for
// state position (x, y). Values are taken modulo w for narrower widths.
//
// Source: spec section 6, "Parameter tables", itself the standard Keccak
// reference rotation-offset table.
var rotation64 = [5][5]uint{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

// roundConstants64 are the 24 standard Keccak-f[1600] round constants RC[i].
// For narrower widths, only the low w bits of the first rounds(w) entries
// are used; the sequence itself is the same regardless of w.
var roundConstants64 = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationFor returns rotation[x][y] for the given lane width: the w=64
// reference offset at state position (x, y) — rotation64[y][x], since
// rotation64 is stored row-major by y — reduced modulo w.
func rotationFor(laneBits int) [5][5]uint {
	var r [5][5]uint
	w := uint(laneBits)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			r[x][y] = rotation64[y][x] % w
		}
	}
	return r
}

// roundConstantsFor returns the round(w) round constants for the given
// lane width, each truncated to its low laneBits bits.
func roundConstantsFor(laneBits, rounds int) []uint64 {
	rc := make([]uint64, rounds)
	mask := laneMask(laneBits)
	for i := 0; i < rounds; i++ {
		rc[i] = roundConstants64[i] & mask
	}
	return rc
}

// laneMask returns 2^w - 1, the mask of live bits within a lane of width w.
func laneMask(laneBits int) uint64 {
	if laneBits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(laneBits)) - 1
}

// bebigokimisaLanes are the six (x,y) positions complemented before the
// first round and after the last round when the lane-complementing
// optimization is enabled. Source: spec section 4.1.1.
var bebigokimisaLanes = [6][2]int{
	{1, 0}, {2, 0}, {3, 1}, {2, 2}, {2, 3}, {0, 4},
}
