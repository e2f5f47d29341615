package sha3

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-keccak/keccak/keccakf"
	"github.com/go-keccak/keccak/sponge"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEndToEndKnownAnswers(t *testing.T) {
	t.Run("SHA3-256 empty", func(t *testing.T) {
		h := New256()
		h.Write(nil)
		require.Equal(t, mustHex(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"), h.Sum(nil))
	})

	t.Run("SHA3-256 abc", func(t *testing.T) {
		h := New256()
		h.Write([]byte("abc"))
		require.Equal(t, mustHex(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"), h.Sum(nil))
	})

	t.Run("SHA3-512 abc", func(t *testing.T) {
		h := New512()
		h.Write([]byte("abc"))
		want := mustHex(t, "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712"+
			"e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0")
		require.Equal(t, want, h.Sum(nil))
	})

	t.Run("SHAKE128 empty 256 bits", func(t *testing.T) {
		h := NewShake128()
		h.Write(nil)
		out := make([]byte, 32)
		_, err := h.Read(out)
		require.NoError(t, err)
		require.Equal(t, mustHex(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"), out)
	})

	t.Run("SHAKE256 empty 512 bits", func(t *testing.T) {
		h := NewShake256()
		h.Write(nil)
		out := make([]byte, 64)
		_, err := h.Read(out)
		require.NoError(t, err)
		want := mustHex(t, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762"+
			"fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be")
		require.Equal(t, want, out)
	})

	t.Run("SHA3-224 applied twice", func(t *testing.T) {
		h1 := New224()
		h1.Write([]byte("abc"))
		out1 := h1.Sum(nil)
		require.Equal(t, mustHex(t, "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"), out1)

		h2 := New224()
		h2.Write(out1)
		out2 := h2.Sum(nil)
		require.Len(t, out2, 28)

		// Hashing the same first-round digest again must be deterministic.
		h3 := New224()
		h3.Write(out1)
		require.Equal(t, out2, h3.Sum(nil))
	})
}

// fixedParams/xofParams mirror the (rate, suffix, suffixBits) pairs the
// exported constructors use, letting the bebigokimisa toggle be exercised
// at this layer without widening the public API.
func fixedParams(rateBits, outputBits int) sponge.Params {
	return sponge.Params{Width: keccakf.Width1600, Rate: rateBits, Suffix: sha3Suffix, SuffixBits: 2, OutputBits: outputBits}
}

func xofParams(rateBits int, suffix byte, suffixBits int) sponge.Params {
	return sponge.Params{Width: keccakf.Width1600, Rate: rateBits, Suffix: suffix, SuffixBits: suffixBits, OutputBits: 0}
}

func TestBebigokimisaDoesNotChangeOutput(t *testing.T) {
	msg := []byte("the five boxing wizards jump quickly")

	cases := []sponge.Params{
		fixedParams(1152, 224),
		fixedParams(1088, 256),
		fixedParams(832, 384),
		fixedParams(576, 512),
	}
	for _, p := range cases {
		standard, err := sponge.New(p, false)
		require.NoError(t, err)
		standard.Write(msg)

		bebi, err := sponge.New(p, true)
		require.NoError(t, err)
		bebi.Write(msg)

		require.Equal(t, standard.Sum(nil), bebi.Sum(nil))
	}

	xofCases := []sponge.Params{
		xofParams(1344, shakeSuffix, 4),
		xofParams(1088, shakeSuffix, 4),
		xofParams(1344, rawShakeSuffix, 2),
		xofParams(1088, rawShakeSuffix, 2),
	}
	for _, p := range xofCases {
		standard, err := sponge.New(p, false)
		require.NoError(t, err)
		standard.Write(msg)
		wantOut := make([]byte, 64)
		standard.Read(wantOut)

		bebi, err := sponge.New(p, true)
		require.NoError(t, err)
		bebi.Write(msg)
		gotOut := make([]byte, 64)
		bebi.Read(gotOut)

		require.Equal(t, wantOut, gotOut)
	}
}

func TestStreamingMatchesBufferedWrite(t *testing.T) {
	msg := bytes.Repeat([]byte("streaming write equivalence "), 200)

	buffered := New256()
	buffered.Write(msg)

	s, err := sponge.New(fixedParams(1088, 256), false)
	require.NoError(t, err)
	_, err = s.ReadFrom(bytes.NewReader(msg))
	require.NoError(t, err)

	require.Equal(t, buffered.Sum(nil), s.Sum(nil))
}

func TestShakeCloneForksIndependently(t *testing.T) {
	h := NewShake128()
	h.Write([]byte("shared prefix"))

	clone := h.Clone()
	h.Write([]byte(" original tail"))
	clone.Write([]byte(" clone tail"))

	hOut := make([]byte, 32)
	h.Read(hOut)
	cloneOut := make([]byte, 32)
	clone.Read(cloneOut)

	require.NotEqual(t, hOut, cloneOut)
}

func TestRawShakeDiffersFromShake(t *testing.T) {
	msg := []byte("domain separation matters")

	shake := NewShake128()
	shake.Write(msg)
	shakeOut := make([]byte, 32)
	shake.Read(shakeOut)

	raw := NewRawShake128()
	raw.Write(msg)
	rawOut := make([]byte, 32)
	raw.Read(rawOut)

	require.NotEqual(t, shakeOut, rawOut)
}

func TestResetProducesFreshState(t *testing.T) {
	h := New256()
	h.Write([]byte("some input"))
	h.Reset()
	h.Write([]byte("some input"))

	fresh := New256()
	fresh.Write([]byte("some input"))

	require.Equal(t, fresh.Sum(nil), h.Sum(nil))
}
