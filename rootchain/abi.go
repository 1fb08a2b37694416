package rootchain

import (
	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
)

var Registry = abicodec.MustParseRegistry(`
[
	{
		"inputs": [
			{
				"internalType": "bytes",
				"name": "data",
				"type": "bytes"
			},
			{
				"internalType": "bytes",
				"name": "sigs",
				"type": "bytes"
			}
		],
		"name": "submitHeaderBlock",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "currentHeaderBlock",
		"outputs": [
			{
				"internalType": "uint256",
				"name": "",
				"type": "uint256"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{
				"internalType": "uint256",
				"name": "",
				"type": "uint256"
			}
		],
		"name": "headerBlocks",
		"outputs": [
			{
				"internalType": "bytes32",
				"name": "root",
				"type": "bytes32"
			},
			{
				"internalType": "uint256",
				"name": "start",
				"type": "uint256"
			},
			{
				"internalType": "uint256",
				"name": "end",
				"type": "uint256"
			},
			{
				"internalType": "uint256",
				"name": "createdAt",
				"type": "uint256"
			},
			{
				"internalType": "address",
				"name": "proposer",
				"type": "address"
			}
		],
		"stateMutability": "view",
		"type": "function"
	}
]
`)

var (
	SubmitHeaderBlockSelector = abicodec.MustParseSelector("0x6a791f11")

	SubmitHeaderBlockSchema = mustInputs("submitHeaderBlock")

	// HeaderBlockSchema is the layout of the data argument of submitHeaderBlock.
	HeaderBlockSchema = abicodec.MustNewSchema(
		"address proposer",
		"uint256 start",
		"uint256 end",
		"bytes32 rootHash",
		"bytes32 accountHash",
		"uint256 borChainID",
	)
)

func mustInputs(name string) abicodec.Schema {
	s, err := Registry.Inputs(name)
	if err != nil {
		panic(err)
	}
	return s
}
