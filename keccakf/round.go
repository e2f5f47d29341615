package keccakf

import "math/bits"

// Permute applies Keccak-f[b]: rounds(w) rounds of theta, rho+pi, chi, and
// iota (spec section 4.1.1). When bebigokimisa is enabled, the six fixed
// lanes are complemented before the first round and again after the last,
// and chi is computed with the OR-substituted row templates of spec
// section 4.1.5 instead of the standard NOT/AND form.
func (s *State) Permute() {
	if s.bebigokimisa {
		s.complementSix()
	}
	var b [25]uint64
	for _, rc := range s.roundConstants {
		s.theta()
		s.rhoPi(&b)
		if s.bebigokimisa {
			s.chiBebigokimisa(&b)
		} else {
			s.chiStandard(&b)
		}
		s.iota(rc)
	}
	if s.bebigokimisa {
		s.complementSix()
	}
}

// rotl rotates v left by k bits within the lane's w-bit width.
func (s *State) rotl(v uint64, k uint) uint64 {
	w := s.laneBits
	if w == 64 {
		return bits.RotateLeft64(v, int(k))
	}
	k %= uint(w)
	if k == 0 {
		return v
	}
	return ((v << k) | (v >> (uint(w) - k))) & s.laneMask
}

// not complements v within the lane mask.
func (s *State) not(v uint64) uint64 { return v ^ s.laneMask }

// theta computes C[x] = XOR of column x, D[x] = C[x-1] ^ rotl(C[x+1], 1),
// and XORs D[x] into every lane of column x (spec section 4.1.2).
func (s *State) theta() {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s.lanes[idx(x, 0)] ^ s.lanes[idx(x, 1)] ^ s.lanes[idx(x, 2)] ^ s.lanes[idx(x, 3)] ^ s.lanes[idx(x, 4)]
	}
	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ s.rotl(c[(x+1)%5], 1)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s.lanes[idx(x, y)] ^= d[x]
		}
	}
}

// rhoPi writes B[y, (2x+3y) mod 5] = rotl(S[x,y], rho[x][y]) for all x, y
// (spec section 4.1.3). Every cell of b is written before any is read.
func (s *State) rhoPi(b *[25]uint64) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			v := s.rotl(s.lanes[idx(x, y)], s.rotation[x][y])
			xp, yp := y, (2*x+3*y)%5
			b[idx(xp, yp)] = v
		}
	}
}

// chiStandard computes S[x,y] = B[x,y] ^ (NOT B[x+1,y] AND B[x+2,y]) for
// all x, y (spec section 4.1.4).
func (s *State) chiStandard(b *[25]uint64) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := b[idx((x+1)%5, y)]
			q := b[idx((x+2)%5, y)]
			s.lanes[idx(x, y)] = b[idx(x, y)] ^ (s.not(p) & q)
		}
	}
}

// chiBebigokimisa computes chi using the OR-substituted row templates of
// spec section 4.1.5, valid only when the six Bebigokimisa lanes are held
// complemented around the full Permute call.
func (s *State) chiBebigokimisa(b *[25]uint64) {
	get := func(x, y int) uint64 { return b[idx(x, y)] }
	set := func(x, y int, v uint64) { s.lanes[idx(x, y)] = v }

	// y=0: OR, OR(NOT on B[2,0]), AND, OR, AND
	set(0, 0, get(0, 0)^(get(1, 0)|get(2, 0)))
	set(1, 0, get(1, 0)^(s.not(get(2, 0))|get(3, 0)))
	set(2, 0, get(2, 0)^(get(3, 0)&get(4, 0)))
	set(3, 0, get(3, 0)^(get(4, 0)|get(0, 0)))
	set(4, 0, get(4, 0)^(get(0, 0)&get(1, 0)))

	// y=1: OR, AND, OR(NOT on B[4,1]), OR, AND
	set(0, 1, get(0, 1)^(get(1, 1)|get(2, 1)))
	set(1, 1, get(1, 1)^(get(2, 1)&get(3, 1)))
	set(2, 1, get(2, 1)^(get(3, 1)|s.not(get(4, 1))))
	set(3, 1, get(3, 1)^(get(4, 1)|get(0, 1)))
	set(4, 1, get(4, 1)^(get(0, 1)&get(1, 1)))

	// y=2: OR, AND, AND(NOT on B[3,2]), OR with NOT B[3,2] as the XOR term, AND
	set(0, 2, get(0, 2)^(get(1, 2)|get(2, 2)))
	set(1, 2, get(1, 2)^(get(2, 2)&get(3, 2)))
	set(2, 2, get(2, 2)^(s.not(get(3, 2))&get(4, 2)))
	set(3, 2, s.not(get(3, 2))^(get(4, 2)|get(0, 2)))
	set(4, 2, get(4, 2)^(get(0, 2)&get(1, 2)))

	// y=3: AND, OR, OR(NOT on B[3,3]), AND with NOT B[3,3] as the XOR term, OR
	set(0, 3, get(0, 3)^(get(1, 3)&get(2, 3)))
	set(1, 3, get(1, 3)^(get(2, 3)|get(3, 3)))
	set(2, 3, get(2, 3)^(s.not(get(3, 3))|get(4, 3)))
	set(3, 3, s.not(get(3, 3))^(get(4, 3)&get(0, 3)))
	set(4, 3, get(4, 3)^(get(0, 3)|get(1, 3)))

	// y=4: AND(NOT on B[1,4]), OR with NOT B[1,4] as the XOR term, AND, OR, AND
	set(0, 4, get(0, 4)^(s.not(get(1, 4))&get(2, 4)))
	set(1, 4, s.not(get(1, 4))^(get(2, 4)|get(3, 4)))
	set(2, 4, get(2, 4)^(get(3, 4)&get(4, 4)))
	set(3, 4, get(3, 4)^(get(4, 4)|get(0, 4)))
	set(4, 4, get(4, 4)^(get(0, 4)&get(1, 4)))
}

// iota XORs the round constant into lane (0,0) (spec section 4.1.6).
func (s *State) iota(rc uint64) {
	s.lanes[idx(0, 0)] ^= rc
}

// complementSix flips the six Bebigokimisa lanes in place.
func (s *State) complementSix() {
	for _, p := range bebigokimisaLanes {
		s.lanes[idx(p[0], p[1])] ^= s.laneMask
	}
}
