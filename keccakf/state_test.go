package keccakf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnsupportedWidth(t *testing.T) {
	_, err := New(Width(42), false)
	require.Error(t, err)
}

func TestNewAcceptsAllDefinedWidths(t *testing.T) {
	widths := []Width{Width25, Width50, Width100, Width200, Width400, Width800, Width1600}
	for _, w := range widths {
		s, err := New(w, false)
		require.NoError(t, err)
		require.Equal(t, w, s.Width())
		require.Equal(t, int(w)/25, s.LaneBits())
	}
}

func TestRoundsFormula(t *testing.T) {
	cases := map[Width]int{
		Width25: 12, Width50: 14, Width100: 16, Width200: 18,
		Width400: 20, Width800: 22, Width1600: 24,
	}
	for w, want := range cases {
		require.Equal(t, want, w.Rounds(), "width %d", w)
	}
}

// TestPermuteAllZeroStateFirstRound exercises the permutation on the all-zero
// Keccak-f[1600] state. The first-round output is entirely determined by
// the round constant (theta, rho, pi and chi all leave an all-zero state
// unchanged), so lane (0,0) after one round equals RC[0] and every other
// lane stays zero.
func TestPermuteAllZeroStateFirstRound(t *testing.T) {
	s, err := New(Width1600, false)
	require.NoError(t, err)

	s.theta()
	var b [25]uint64
	s.rhoPi(&b)
	s.chiStandard(&b)
	s.iota(roundConstants64[0])

	require.Equal(t, roundConstants64[0], s.lanes[idx(0, 0)])
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 0 && y == 0 {
				continue
			}
			require.Zerof(t, s.lanes[idx(x, y)], "lane (%d,%d) should stay zero", x, y)
		}
	}
}

// TestBebigokimisaMatchesStandard checks spec property P5: the
// lane-complementing chi optimization produces the same state as the
// standard chi computation, for an arbitrary non-trivial starting state.
func TestBebigokimisaMatchesStandard(t *testing.T) {
	seed := func() [25]uint64 {
		var lanes [25]uint64
		x := uint64(0x0123456789abcdef)
		for i := range lanes {
			x ^= x << 13
			x ^= x >> 7
			x ^= x << 17
			lanes[i] = x
		}
		return lanes
	}

	standard, err := New(Width1600, false)
	require.NoError(t, err)
	standard.lanes = seed()

	bebi, err := New(Width1600, true)
	require.NoError(t, err)
	bebi.lanes = seed()

	standard.Permute()
	bebi.Permute()

	require.Equal(t, standard.lanes, bebi.lanes)
}

func TestComplementSixIsInvolution(t *testing.T) {
	s, err := New(Width1600, true)
	require.NoError(t, err)
	s.lanes = [25]uint64{}
	for i := range s.lanes {
		s.lanes[i] = uint64(i + 1)
	}
	before := s.lanes
	s.complementSix()
	s.complementSix()
	require.Equal(t, before, s.lanes)
}

func TestRotlRoundTrips(t *testing.T) {
	s, err := New(Width1600, false)
	require.NoError(t, err)
	v := uint64(0xdeadbeefcafef00d)
	for k := uint(0); k < 64; k++ {
		rotated := s.rotl(v, k)
		back := s.rotl(rotated, 64-k)
		require.Equal(t, v, back, "k=%d", k)
	}
}

func TestXorBitsLaneOrder(t *testing.T) {
	s, err := New(Width1600, false)
	require.NoError(t, err)
	buf := make([]byte, 8)
	buf[0] = 0x01
	s.XorBits(0, buf, 0, 64)
	require.Equal(t, uint64(1), s.lanes[idx(0, 0)])
	for i := 1; i < 25; i++ {
		require.Zero(t, s.lanes[i])
	}
}

func TestXorBitsUnaligned(t *testing.T) {
	s, err := New(Width1600, false)
	require.NoError(t, err)
	buf := []byte{0b00011001} // 5 bits: 1,0,0,1,1 (LSB first)
	s.XorBits(0, buf, 0, 5)
	var want uint64
	for i, bit := range []uint64{1, 0, 0, 1, 1} {
		want |= bit << uint(i)
	}
	require.Equal(t, want, s.lanes[idx(0, 0)])
}

func TestExtractBitsRoundTrip(t *testing.T) {
	s, err := New(Width1600, false)
	require.NoError(t, err)
	s.lanes[idx(1, 0)] = 0x0102030405060708
	out := make([]byte, 16)
	s.ExtractBits(out, 64, 64, 64)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, out[8:])
	for _, b := range out[:8] {
		require.Zero(t, b)
	}
}
