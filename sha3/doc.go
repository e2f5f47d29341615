// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the eight FIPS 202 hash and extendable-output
// functions: SHA3-224, SHA3-256, SHA3-384, SHA3-512, SHAKE128, SHAKE256,
// and the unpadded-domain RawSHAKE128/RawSHAKE256 variants.
//
// Every instance is a fixed (rate, capacity, domain suffix, output length)
// parameterization of the generic sponge in package sponge, which is in
// turn built on the Keccak-f[1600] permutation in package keccakf. For a
// detailed specification of the functions, see http://keccak.noekeon.org/
//
//
// Guidance
//
// If you aren't sure what function you need, use SHAKE256 with at least
// 64 bytes of output.
//
//
// Security strengths of functions
//
//           output  collision-resistance  preimage-resistance   recommendation
// SHA3-224     28B              112 bits             224 bits   legacy
// SHA3-256     32B              128 bits             256 bits   until 2030
// SHA3-384     48B              192 bits             384 bits
// SHA3-512     64B              256 bits             512 bits
//
//           output  collision-resistance  preimage-resistance   recommendation
// SHAKE128  >= 32B              128 bits             128 bits   until 2030
// SHAKE256  >= 64B              256 bits             256 bits
//
// (Requesting more than 32B or 64B of output from SHAKE128 or SHAKE256
// does not increase their collision-resistance above 128 or 256 bits.)
//
//
// The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random
// permutation by applying the permutation to a state of rate+capacity
// bits, hiding the capacity bits from the caller.
//
//     up to "rate" bits xored in
//     \/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//     ======================================----------------
//     |  rate                              | capacity      |
//     ======================================----------------
//     ::::::::::::::::::::::::::::::::::::::::::::::::::::::
//     ::::::::::::::::::Keccak-f permutation:::::::::::::::::
//     ::::::::::::::::::::::::::::::::::::::::::::::::::::::
//     ======================================----------------
//     |  rate                              | capacity      |
//     ======================================----------------
//     /\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//     up to "rate" bits copied out
//
// security_strength == capacity / 2, and capacity + rate == permutation
// width. Since Keccak-f[1600] is 1600 bits wide, security_strength ==
// (1600 - rate) / 2 for every preset in this package.
package sha3
