package staking

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
)

type StakeManagerState struct {
	NFTContract    common.Address `json:"nftContract"`
	NFTCounter     *big.Int       `json:"nftCounter"`
	MinHeimdallFee *big.Int       `json:"minHeimdallFee"`
	MinDeposit     *big.Int       `json:"minDeposit"`
}

// Reader reads StakeManager state through eth_call.
type Reader struct {
	caller  ethereum.ContractCaller
	address common.Address
	logger  log.Logger
}

func NewReader(caller ethereum.ContractCaller, address common.Address, logger log.Logger) *Reader {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Reader{
		caller:  caller,
		address: address,
		logger:  logger,
	}
}

// Call invokes the view method name with no arguments at the latest block.
func (r *Reader) Call(ctx context.Context, name string) (abicodec.Result, error) {
	m, err := Registry.Method(name)
	if err != nil {
		return abicodec.Result{}, err
	}
	ret, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: m.Selector[:]}, nil)
	if err != nil {
		return abicodec.Result{}, errors.Wrapf(err, "call %s", name)
	}
	res, err := abicodec.DecodeMethodReturn(Registry, name, hexutil.Encode(ret))
	if err != nil {
		return abicodec.Result{}, errors.Wrapf(err, "decode %s", name)
	}
	r.logger.Info("stake manager", "method", name, "value", res.Scalar())
	return res, nil
}

func (r *Reader) callBigInt(ctx context.Context, name string) (*big.Int, error) {
	res, err := r.Call(ctx, name)
	if err != nil {
		return nil, err
	}
	return abicodec.AsBigInt(res.Scalar())
}

func (r *Reader) ReadState(ctx context.Context) (*StakeManagerState, error) {
	res, err := r.Call(ctx, "NFTContract")
	if err != nil {
		return nil, err
	}
	state := &StakeManagerState{}
	if state.NFTContract, err = abicodec.AsAddress(res.Scalar()); err != nil {
		return nil, err
	}
	if state.NFTCounter, err = r.callBigInt(ctx, "NFTCounter"); err != nil {
		return nil, err
	}
	if state.MinHeimdallFee, err = r.callBigInt(ctx, "minHeimdallFee"); err != nil {
		return nil, err
	}
	if state.MinDeposit, err = r.callBigInt(ctx, "minDeposit"); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *Reader) TotalStake(ctx context.Context) (*big.Int, error) {
	return r.callBigInt(ctx, "currentValidatorSetTotalStake")
}
