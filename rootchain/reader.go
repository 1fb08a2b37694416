package rootchain

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

// Checkpoint is a header block as stored by the RootChain contract.
type Checkpoint struct {
	ID        *big.Int       `json:"id"`
	Root      common.Hash    `json:"root"`
	Start     *big.Int       `json:"start"`
	End       *big.Int       `json:"end"`
	CreatedAt *big.Int       `json:"createdAt"`
	Proposer  common.Address `json:"proposer"`
}

// Reader reads checkpoints from the RootChain through eth_call.
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

func (r *Reader) call(ctx context.Context, name string, args ...interface{}) (abicodec.Result, error) {
	m, err := Registry.Method(name)
	if err != nil {
		return abicodec.Result{}, err
	}
	data, err := abicodec.EncodeCall(m.Selector, m.Inputs, args...)
	if err != nil {
		return abicodec.Result{}, errors.Wrapf(err, "pack %s", name)
	}
	ret, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return abicodec.Result{}, errors.Wrapf(err, "call %s", name)
	}
	res, err := abicodec.DecodeMethodReturn(Registry, name, hexutil.Encode(ret))
	if err != nil {
		return abicodec.Result{}, errors.Wrapf(err, "decode %s", name)
	}
	return res, nil
}

// CurrentHeaderBlock returns the id the next checkpoint will be stored under.
func (r *Reader) CurrentHeaderBlock(ctx context.Context) (*big.Int, error) {
	res, err := r.call(ctx, "currentHeaderBlock")
	if err != nil {
		return nil, err
	}
	id, err := abicodec.AsBigInt(res.Scalar())
	if err != nil {
		return nil, err
	}
	r.logger.Info("root chain", "method", "currentHeaderBlock", "value", id)
	return id, nil
}

func (r *Reader) HeaderBlock(ctx context.Context, id *big.Int) (cp *Checkpoint, err error) {
	res, err := r.call(ctx, "headerBlocks", id)
	if err != nil {
		return nil, err
	}
	cp = &Checkpoint{ID: new(big.Int).Set(id)}
	if cp.Root, err = res.Hash("root"); err != nil {
		return nil, err
	}
	if cp.Start, err = res.BigInt("start"); err != nil {
		return nil, err
	}
	if cp.End, err = res.BigInt("end"); err != nil {
		return nil, err
	}
	if cp.CreatedAt, err = res.BigInt("createdAt"); err != nil {
		return nil, err
	}
	if cp.Proposer, err = res.Address("proposer"); err != nil {
		return nil, err
	}
	r.logger.Info("root chain", "method", "headerBlocks", "id", id,
		"start", cp.Start, "end", cp.End, "proposer", cp.Proposer.Hex())
	return cp, nil
}
