package staking

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
)

const stakeManagerABI = `
[
	{
		"inputs": [],
		"name": "NFTContract",
		"outputs": [
			{
				"internalType": "contract StakingNFT",
				"name": "",
				"type": "address"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "NFTCounter",
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
		"inputs": [],
		"name": "minHeimdallFee",
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
		"inputs": [],
		"name": "minDeposit",
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
		"inputs": [],
		"name": "currentValidatorSetTotalStake",
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
				"name": "amount",
				"type": "uint256"
			},
			{
				"internalType": "uint256",
				"name": "heimdallFee",
				"type": "uint256"
			},
			{
				"internalType": "bool",
				"name": "acceptDelegation",
				"type": "bool"
			},
			{
				"internalType": "bytes",
				"name": "signerPubkey",
				"type": "bytes"
			}
		],
		"name": "stake",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]
`

var Registry = abicodec.MustParseRegistry(stakeManagerABI)

// PackStake builds the call data of stake(amount, heimdallFee, acceptDelegation, signerPubkey)
// for the deposit in amounts.
func PackStake(amounts *StakeAmounts, heimdallFee *big.Int, acceptDelegation bool, signerPubkey []byte) ([]byte, error) {
	m, err := Registry.Method("stake")
	if err != nil {
		return nil, err
	}
	return abicodec.EncodeCall(m.Selector, m.Inputs,
		amounts.Deposit.ToBig(), heimdallFee, acceptDelegation, signerPubkey)
}

// NewStakeTx returns the unsigned transaction that stakes amounts through the
// StakeManager at stakeManager. It carries amounts.Value as its value.
func NewStakeTx(nonce uint64, stakeManager common.Address, amounts *StakeAmounts, heimdallFee *big.Int,
	acceptDelegation bool, signerPubkey []byte, gasLimit uint64, gasPrice *big.Int) (*types.Transaction, error) {

	data, err := PackStake(amounts, heimdallFee, acceptDelegation, signerPubkey)
	if err != nil {
		return nil, err
	}
	return ethutils.NewTx(nonce, &stakeManager, amounts.Value.ToBig(), gasLimit, gasPrice, data), nil
}
