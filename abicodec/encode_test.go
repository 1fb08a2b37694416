package abicodec_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/testutils"
)

const tupleABI = `[
	{
		"inputs": [],
		"name": "validators",
		"outputs": [
			{
				"components": [
					{"internalType": "address", "name": "signer", "type": "address"},
					{"internalType": "uint256", "name": "amount", "type": "uint256"},
					{"internalType": "bytes", "name": "pubkey", "type": "bytes"}
				],
				"internalType": "struct Validator[]",
				"name": "",
				"type": "tuple[]"
			},
			{"internalType": "uint256", "name": "epoch", "type": "uint256"}
		],
		"stateMutability": "view",
		"type": "function"
	}
]`

func TestRoundTrip(t *testing.T) {
	maxU256 := bigFromString("0x" + strings.Repeat("ff", 32))
	minI256 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	staker := common.HexToAddress(testutils.StakerAddress)

	cases := []struct {
		decls  []string
		values []interface{}
	}{
		{
			[]string{"address a", "uint256 b", "bool c", "bytes32 d", "bytes e", "string f"},
			[]interface{}{staker, maxU256, true, testutils.HexToHash32("0x29a999b8d35ffdd5aed6b72a7898ca9d718f40614e9d1b89f2a6557d2e52921d"),
				testutils.HexToBytes("a555a65620dac214532407c6d3e79d00407945ddcb4930f86f75980ca018ddb24b"), "sBCH"},
		},
		{
			[]string{"uint8 small", "int64 neg", "int256 big", "uint24 odd", "int8 tiny"},
			[]interface{}{big.NewInt(255), big.NewInt(-5), minI256, big.NewInt(0xffffff), big.NewInt(-128)},
		},
		{
			[]string{"uint256[] list", "address[2] pair"},
			[]interface{}{
				[]interface{}{big.NewInt(1), big.NewInt(0), maxU256},
				[]interface{}{staker, common.Address{}},
			},
		},
		{
			[]string{"bytes4 sel"},
			[]interface{}{[]byte{0x6a, 0x79, 0x1f, 0x11}},
		},
		{
			[]string{"bytes empty", "string none"},
			[]interface{}{[]byte{}, ""},
		},
		{
			[]string{"bytes[] blobs"},
			[]interface{}{[]interface{}{[]byte{1}, testutils.UintToBytes32(3), []byte{}}},
		},
	}

	for _, c := range cases {
		schema := abicodec.MustNewSchema(c.decls...)
		data, err := abicodec.Encode(schema, c.values...)
		require.NoError(t, err, schema.String())
		require.Zero(t, len(data)%32)

		res, err := abicodec.DecodeBytes(schema, data)
		require.NoError(t, err, schema.String())
		require.Equal(t, c.values, res.Values(), schema.String())
		require.Equal(t, len(c.values) == 1, res.IsScalar())

		again, err := abicodec.Encode(schema, res.Values()...)
		require.NoError(t, err)
		require.Equal(t, data, again)
	}
}

func TestRoundTripTuple(t *testing.T) {
	reg := abicodec.MustParseRegistry(tupleABI)
	schema, err := abicodec.LookupSchema(reg, "validators")
	require.NoError(t, err)

	validators := []interface{}{
		[]abicodec.Field{
			{Name: "signer", Value: common.HexToAddress(testutils.StakerAddress)},
			{Name: "amount", Value: bigFromString("200000000000000000000")},
			{Name: "pubkey", Value: []byte{0x04, 0xb3, 0x66}},
		},
		[]abicodec.Field{
			{Name: "signer", Value: common.HexToAddress("0xbe188d6641e8b680743a4815dfa0f6208038960f")},
			{Name: "amount", Value: big.NewInt(1)},
			{Name: "pubkey", Value: []byte{}},
		},
	}
	data, err := abicodec.Encode(schema, validators, big.NewInt(5773))
	require.NoError(t, err)

	res, err := abicodec.DecodeBytes(schema, data)
	require.NoError(t, err)
	require.Equal(t, validators, res.Map()["0"])
	require.Equal(t, big.NewInt(5773), res.Map()["epoch"])
}

func TestEncodeRejects(t *testing.T) {
	_, err := abicodec.Encode(abicodec.MustNewSchema("uint8"), big.NewInt(256))
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("uint256"), big.NewInt(-1))
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("int8"), big.NewInt(128))
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("uint256"), uint64(1))
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("bytes32"), []byte{1, 2})
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("address[2]"), []interface{}{common.Address{}})
	require.Error(t, err)
	_, err = abicodec.Encode(abicodec.MustNewSchema("uint256", "bool"), big.NewInt(1))
	require.Error(t, err)
}

func TestEncodeCall(t *testing.T) {
	sel := abicodec.MustParseSelector("0x70a08231")
	call, err := abicodec.EncodeCall(sel, abicodec.MustNewSchema("address"), common.HexToAddress(testutils.StakerAddress))
	require.NoError(t, err)
	require.Len(t, call, 4+32)
	require.Equal(t, sel[:], call[:4])
}
