package staking

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/viswanathkgp12/matic-security-hackathon/internal/bigutils"
)

var (
	AmountOverflow = errors.New("stake amount overflows uint256")
)

// StakeAmounts are the token deposit and the ether value of a stake call.
// The StakeManager requires the deposit to be strictly above minDeposit,
// and the value to cover the deposit plus the heimdall fee.
type StakeAmounts struct {
	Deposit *uint256.Int
	Value   *uint256.Int
}

func ComputeStakeAmounts(minDeposit, minHeimdallFee *big.Int) (*StakeAmounts, error) {
	deposit, ok := bigutils.FromBig(minDeposit)
	if !ok {
		return nil, errors.Wrapf(AmountOverflow, "minDeposit %v", minDeposit)
	}
	fee, ok := bigutils.FromBig(minHeimdallFee)
	if !ok {
		return nil, errors.Wrapf(AmountOverflow, "minHeimdallFee %v", minHeimdallFee)
	}
	deposit, ok = bigutils.AddU256(deposit, bigutils.NewU256(1))
	if !ok {
		return nil, errors.Wrap(AmountOverflow, "deposit")
	}
	value, ok := bigutils.AddU256(deposit, fee)
	if !ok {
		return nil, errors.Wrap(AmountOverflow, "value")
	}
	return &StakeAmounts{Deposit: deposit, Value: value}, nil
}
