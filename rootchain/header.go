package rootchain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
)

// HeaderBlock is a checkpoint of the child chain as proposed to the root chain.
type HeaderBlock struct {
	Proposer    common.Address `json:"proposer"`
	Start       *big.Int       `json:"start"`
	End         *big.Int       `json:"end"`
	RootHash    common.Hash    `json:"rootHash"`
	AccountHash common.Hash    `json:"accountHash"`
	BorChainID  *big.Int       `json:"borChainID"`
}

type HeaderBlockCall struct {
	BlockData hexutil.Bytes `json:"data"`
	SigData   hexutil.Bytes `json:"sigs"`
	Header    HeaderBlock   `json:"header"`
}

// DecodeSubmitHeaderBlock decodes submitHeaderBlock call data, including the
// header block carried ABI-encoded inside its data argument.
func DecodeSubmitHeaderBlock(callData []byte) (*HeaderBlockCall, error) {
	nested, err := abicodec.DecodeNested(callData, SubmitHeaderBlockSelector, SubmitHeaderBlockSchema,
		abicodec.Step{Field: "data", Schema: HeaderBlockSchema})
	if err != nil {
		return nil, err
	}

	call := &HeaderBlockCall{}
	if call.BlockData, err = nested.Outer.Bytes("data"); err != nil {
		return nil, err
	}
	if call.SigData, err = nested.Outer.Bytes("sigs"); err != nil {
		return nil, err
	}
	if call.Header, err = headerFromResult(nested.Inner[0]); err != nil {
		return nil, err
	}
	return call, nil
}

func DecodeSubmitHeaderBlockHex(callDataHex string) (*HeaderBlockCall, error) {
	if callDataHex == "" || callDataHex == "0x" {
		return nil, abicodec.EmptyResult
	}
	data, err := hexutil.Decode(callDataHex)
	if err != nil {
		return nil, errors.Wrap(abicodec.MalformedEncoding, err.Error())
	}
	return DecodeSubmitHeaderBlock(data)
}

func headerFromResult(res abicodec.Result) (h HeaderBlock, err error) {
	if h.Proposer, err = res.Address("proposer"); err != nil {
		return
	}
	if h.Start, err = res.BigInt("start"); err != nil {
		return
	}
	if h.End, err = res.BigInt("end"); err != nil {
		return
	}
	if h.RootHash, err = res.Hash("rootHash"); err != nil {
		return
	}
	if h.AccountHash, err = res.Hash("accountHash"); err != nil {
		return
	}
	h.BorChainID, err = res.BigInt("borChainID")
	return
}

// PackSubmitHeaderBlock builds submitHeaderBlock call data for h and sigs.
func PackSubmitHeaderBlock(h HeaderBlock, sigs []byte) ([]byte, error) {
	data, err := abicodec.Encode(HeaderBlockSchema,
		h.Proposer, h.Start, h.End, h.RootHash, h.AccountHash, h.BorChainID)
	if err != nil {
		return nil, err
	}
	return abicodec.EncodeCall(SubmitHeaderBlockSelector, SubmitHeaderBlockSchema, data, sigs)
}
