package abicodec_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/testutils"
)

var (
	wrapperSel = abicodec.MustParseSelector("0xdeadbeef")
	wrapper    = abicodec.MustNewSchema("bytes payload", "uint256 nonce", "bytes extra")
	innerA     = abicodec.MustNewSchema("address to", "uint256 amount")
	innerB     = abicodec.MustNewSchema("string memo")
)

func buildWrapped(t *testing.T, prefix []byte) []byte {
	a, err := abicodec.Encode(innerA, common.HexToAddress(testutils.StakerAddress), big.NewInt(1e18))
	require.NoError(t, err)
	b, err := abicodec.Encode(innerB, "checkpoint")
	require.NoError(t, err)
	call, err := abicodec.EncodeCall(wrapperSel, wrapper, a, big.NewInt(7), b)
	require.NoError(t, err)
	return testutils.JoinBytes(prefix, call)
}

func TestDecodeNested(t *testing.T) {
	for _, prefix := range [][]byte{nil, {0x01, 0x02, 0x03}, testutils.UintToBytes32(9)} {
		data := buildWrapped(t, prefix)
		nested, err := abicodec.DecodeNested(data, wrapperSel, wrapper,
			abicodec.Step{Field: "payload", Schema: innerA},
			abicodec.Step{Field: "2", Schema: innerB})
		require.NoError(t, err)

		nonce, err := nested.Outer.BigInt("nonce")
		require.NoError(t, err)
		require.Equal(t, big.NewInt(7), nonce)

		require.Len(t, nested.Inner, 2)
		to, err := nested.Inner[0].Address("to")
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(testutils.StakerAddress), to)
		amount, err := nested.Inner[0].BigInt("amount")
		require.NoError(t, err)
		require.Equal(t, big.NewInt(1e18), amount)

		require.True(t, nested.Inner[1].IsScalar())
		require.Equal(t, "checkpoint", nested.Inner[1].Scalar())
	}
}

func TestDecodeNestedErrors(t *testing.T) {
	data := buildWrapped(t, nil)

	_, err := abicodec.DecodeNested(data, abicodec.MustParseSelector("0x6a791f11"), wrapper)
	require.ErrorIs(t, err, abicodec.SelectorNotFound)

	_, err = abicodec.DecodeNested(data, wrapperSel, wrapper,
		abicodec.Step{Field: "missing", Schema: innerA})
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	_, err = abicodec.DecodeNested(data, wrapperSel, wrapper,
		abicodec.Step{Field: "nonce", Schema: innerA})
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	// the encoded memo is three words long
	_, err = abicodec.DecodeNested(data, wrapperSel, wrapper,
		abicodec.Step{Field: "extra", Schema: abicodec.MustNewSchema("uint256", "uint256", "uint256", "uint256")})
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	_, err = abicodec.DecodeNested(data[:40], wrapperSel, wrapper)
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	_, err = abicodec.DecodeNested(wrapperSel[:], wrapperSel, wrapper)
	require.ErrorIs(t, err, abicodec.EmptyResult)
}

func TestSplitAtSelector(t *testing.T) {
	sel := abicodec.MustParseSelector("0x6a791f11")
	rest, err := abicodec.SplitAtSelector([]byte{0xaa, 0x6a, 0x79, 0x1f, 0x11, 0x01, 0x6a, 0x79, 0x1f, 0x11}, sel)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x6a, 0x79, 0x1f, 0x11}, rest)

	rest, err = abicodec.SplitAtSelector(sel[:], sel)
	require.NoError(t, err)
	require.Empty(t, rest)

	_, err = abicodec.SplitAtSelector([]byte{0x6a, 0x79, 0x1f}, sel)
	require.ErrorIs(t, err, abicodec.SelectorNotFound)

	// "06a791f110" spells the selector from its second hex digit on.
	_, err = abicodec.SplitAtSelector([]byte{0x06, 0xa7, 0x91, 0xf1, 0x10}, sel)
	require.ErrorIs(t, err, abicodec.SelectorNotFound)
}
