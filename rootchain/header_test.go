package rootchain

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/testutils"
)

var recordedHeader = HeaderBlock{
	Proposer:    common.HexToAddress("0xbe188d6641e8b680743a4815dfa0f6208038960f"),
	Start:       big.NewInt(0x168d00),
	End:         big.NewInt(0x168dff),
	RootHash:    testutils.HexToHash32("0x29a999b8d35ffdd5aed6b72a7898ca9d718f40614e9d1b89f2a6557d2e52921d"),
	AccountHash: testutils.HexToHash32("0x1a2c704cdd05b1da028e06f6e0bfe0d914798e671b436237c2c05fadd363fe8f"),
	BorChainID:  big.NewInt(80001),
}

func TestSelector(t *testing.T) {
	m, err := Registry.Method("submitHeaderBlock")
	require.NoError(t, err)
	require.Equal(t, "submitHeaderBlock(bytes,bytes)", m.Sig)
	require.Equal(t, SubmitHeaderBlockSelector, m.Selector)
}

func TestDecodeRecordedSample(t *testing.T) {
	call, err := DecodeSubmitHeaderBlockHex(testutils.SubmitHeaderBlockTx)
	require.NoError(t, err)
	require.Equal(t, recordedHeader, call.Header)
	require.Len(t, call.BlockData, 192)
	require.Len(t, call.SigData, 325)
	require.Equal(t, "0xa555a65620dac214", hexutil.Encode(call.SigData[:8]))
}

func TestDecodeSyntheticSample(t *testing.T) {
	h := recordedHeader
	h.Start = big.NewInt(0x16a200)
	h.End = big.NewInt(0x16a2ff)
	sigs := testutils.HexToBytes("a555a65620dac214532407c6d3e79d00407945ddcb4930f86f75980ca018ddb24b")

	data, err := PackSubmitHeaderBlock(h, sigs)
	require.NoError(t, err)
	require.Equal(t, SubmitHeaderBlockSelector[:], data[:4])

	// wrapped behind another call's bytes
	wrapped := testutils.JoinBytes(testutils.UintToBytes32(1), data)
	for _, in := range [][]byte{data, wrapped} {
		call, err := DecodeSubmitHeaderBlock(in)
		require.NoError(t, err)
		require.Equal(t, h, call.Header)
		require.Equal(t, sigs, []byte(call.SigData))
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeSubmitHeaderBlockHex("0x")
	require.ErrorIs(t, err, abicodec.EmptyResult)

	_, err = DecodeSubmitHeaderBlockHex("0x6a791f1")
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	_, err = DecodeSubmitHeaderBlockHex("0x12345678" + testutils.SubmitHeaderBlockTx[10:])
	require.ErrorIs(t, err, abicodec.SelectorNotFound)

	full := testutils.HexToBytes(testutils.SubmitHeaderBlockTx)
	_, err = DecodeSubmitHeaderBlock(full[:len(full)-64])
	require.ErrorIs(t, err, abicodec.MalformedEncoding)

	// data argument too short for a header block
	short, err := abicodec.EncodeCall(SubmitHeaderBlockSelector, SubmitHeaderBlockSchema,
		testutils.UintToBytes32(1), []byte{})
	require.NoError(t, err)
	_, err = DecodeSubmitHeaderBlock(short)
	require.ErrorIs(t, err, abicodec.MalformedEncoding)
}

func TestHeaderBlockCallJSON(t *testing.T) {
	call, err := DecodeSubmitHeaderBlockHex(testutils.SubmitHeaderBlockTx)
	require.NoError(t, err)
	bz, err := json.Marshal(call.Header)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"proposer": "0xbe188d6641e8b680743a4815dfa0f6208038960f",
		"start": 1478912,
		"end": 1479167,
		"rootHash": "0x29a999b8d35ffdd5aed6b72a7898ca9d718f40614e9d1b89f2a6557d2e52921d",
		"accountHash": "0x1a2c704cdd05b1da028e06f6e0bfe0d914798e671b436237c2c05fadd363fe8f",
		"borChainID": 80001
	}`, string(bz))
}
