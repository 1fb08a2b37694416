package abicodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
)

const overloadedABI = `[
	{
		"inputs": [{"internalType": "address", "name": "owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "address", "name": "owner", "type": "address"},
			{"internalType": "uint256", "name": "id", "type": "uint256"}
		],
		"name": "balanceOf",
		"outputs": [{"internalType": "address", "name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "validatorState",
		"outputs": [
			{"internalType": "uint256", "name": "amount", "type": "uint256"},
			{"internalType": "uint256", "name": "stakerCount", "type": "uint256"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"anonymous": false,
		"inputs": [{"indexed": true, "internalType": "address", "name": "user", "type": "address"}],
		"name": "Staked",
		"type": "event"
	}
]`

func TestNewSchema(t *testing.T) {
	s, err := abicodec.NewSchema("address proposer", "uint256 start", "bytes32", "bytes")
	require.NoError(t, err)
	require.Len(t, s, 4)
	require.Equal(t, "proposer", s[0].Name)
	require.Equal(t, "", s[2].Name)
	require.Equal(t, "(address proposer,uint256 start,bytes32,bytes)", s.String())

	_, err = abicodec.NewSchema("notatype x")
	require.Error(t, err)
	_, err = abicodec.NewSchema("")
	require.Error(t, err)
	_, err = abicodec.NewSchema("uint256 a b")
	require.Error(t, err)
}

func TestLookupSchema(t *testing.T) {
	reg, err := abicodec.ParseRegistry(overloadedABI)
	require.NoError(t, err)

	out, err := abicodec.LookupSchema(reg, "validatorState")
	require.NoError(t, err)
	require.Equal(t, "(uint256 amount,uint256 stakerCount)", out.String())

	_, err = abicodec.LookupSchema(reg, "ValidatorState")
	require.ErrorIs(t, err, abicodec.MethodNotFound)
	_, err = abicodec.LookupSchema(reg, "Staked")
	require.ErrorIs(t, err, abicodec.MethodNotFound)
	_, err = reg.Inputs("nope")
	require.ErrorIs(t, err, abicodec.MethodNotFound)
}

// Overloads are not disambiguated by argument types: the plain name resolves
// to whichever entry the ABI declares first.
func TestOverloadResolvesToFirstDeclared(t *testing.T) {
	reg := abicodec.MustParseRegistry(overloadedABI)

	m, err := reg.Method("balanceOf")
	require.NoError(t, err)
	require.Equal(t, "balanceOf(address)", m.Sig)
	require.Equal(t, "(uint256)", m.Outputs.String())
	require.Equal(t, "0x70a08231", m.Selector.Hex())

	second, err := reg.Method("balanceOf0")
	require.NoError(t, err)
	require.Equal(t, "balanceOf", second.Name)
	require.Equal(t, "balanceOf(address,uint256)", second.Sig)

	require.Equal(t, []string{"balanceOf", "balanceOf0", "validatorState"}, reg.Names())
}

func TestParseRegistryError(t *testing.T) {
	_, err := abicodec.ParseRegistry(`[{"type": "function", "name": "f", "inputs": [{"type": "notatype"}]}]`)
	require.Error(t, err)
	require.Panics(t, func() { abicodec.MustParseRegistry("not json") })
}

func TestSelector(t *testing.T) {
	sel, err := abicodec.ParseSelector("0x6a791f11")
	require.NoError(t, err)
	require.Equal(t, abicodec.Selector{0x6a, 0x79, 0x1f, 0x11}, sel)
	require.Equal(t, "0x6a791f11", sel.Hex())

	_, err = abicodec.ParseSelector("6a791f")
	require.Error(t, err)
	_, err = abicodec.ParseSelector("0xzz791f11")
	require.Error(t, err)
}
