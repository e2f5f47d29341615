// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccakf implements the Keccak-f permutation state: the 5x5 array
// of lanes, the five round sub-transforms (theta, rho, pi, chi, iota), and
// the width parameterization that lets the same code drive Keccak-f[25]
// through Keccak-f[1600].
//
// This package is the bottom layer of a Keccak sponge. It owns the state
// array and the permutation; it has no notion of messages, padding, domain
// suffixes or output lengths, all of which live one layer up in package
// sponge.
package keccakf
