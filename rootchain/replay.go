package rootchain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
)

var (
	UnexpectedRecipient = errors.New("transaction was not sent to the root chain")
)

// TransactionFetcher is the part of an RPC client the replayer needs.
// *ethclient.Client satisfies it.
type TransactionFetcher interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

// Replayer decodes the checkpoints submitted to rootChain by already mined
// transactions.
type Replayer struct {
	fetcher   TransactionFetcher
	rootChain common.Address
	logger    log.Logger
}

func NewReplayer(fetcher TransactionFetcher, rootChain common.Address, logger log.Logger) *Replayer {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Replayer{
		fetcher:   fetcher,
		rootChain: rootChain,
		logger:    logger,
	}
}

func (r *Replayer) ReplayHeaderBlock(ctx context.Context, txHash common.Hash) (*HeaderBlockCall, error) {
	tx, pending, err := r.fetcher.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch tx %s", txHash.Hex())
	}
	if pending {
		r.logger.Info("tx is still pending", "tx", txHash.Hex())
	}
	if tx.To() == nil || *tx.To() != r.rootChain {
		return nil, errors.Wrapf(UnexpectedRecipient, "tx %s", txHash.Hex())
	}
	call, err := DecodeSubmitHeaderBlock(tx.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "tx %s", txHash.Hex())
	}
	r.logger.Info("header block",
		"tx", txHash.Hex(),
		"proposer", call.Header.Proposer.Hex(),
		"start", call.Header.Start,
		"end", call.Header.End,
		"borChainID", call.Header.BorChainID)
	return call, nil
}

// DecodeRawTx decodes the checkpoint submitted by an RLP-encoded transaction.
func DecodeRawTx(rawTx []byte) (*HeaderBlockCall, error) {
	tx, err := ethutils.DecodeTx(rawTx)
	if err != nil {
		return nil, errors.Wrap(err, "decode raw tx")
	}
	return DecodeSubmitHeaderBlock(tx.Data())
}
