package main

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/viswanathkgp12/matic-security-hackathon/account"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/bigutils"
	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
	"github.com/viswanathkgp12/matic-security-hackathon/param"
	"github.com/viswanathkgp12/matic-security-hackathon/rootchain"
	"github.com/viswanathkgp12/matic-security-hackathon/staking"
)

const (
	flagSignerKey  = "signer-key"
	flagDelegation = "accept-delegation"
	flagNonce      = "nonce"
	flagGasPrice   = "gas-price"
	flagGasLimit   = "gas-limit"
)

func dial(ctx context.Context, c *Context) (*ethclient.Client, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	client, err := ethclient.DialContext(ctx, c.Config.RPCUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", c.Config.RPCUrl)
	}
	return client, nil
}

func ReplayHeaderBlockCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "replay-header-block <tx-hash>",
		Short: "Fetch a submitHeaderBlock transaction and decode its header block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := hexutil.Decode(args[0])
			if err != nil || len(bz) != common.HashLength {
				return errors.Errorf("invalid tx hash %q", args[0])
			}
			rctx := context.Background()
			client, err := dial(rctx, ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			replayer := rootchain.NewReplayer(client, ctx.Config.RootChain(), ctx.Logger.With("module", "rootchain"))
			call, err := replayer.ReplayHeaderBlock(rctx, common.BytesToHash(bz))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), call)
		},
	}
}

func ReadRootChainCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "read-root-chain [header-block-id]",
		Short: "Read the current header block id and a stored checkpoint from the RootChain",
		Long: `Read currentHeaderBlock and the checkpoint stored under header-block-id.
Without an id, the checkpoint stored under currentHeaderBlock is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id *big.Int
			if len(args) == 1 {
				u, ok := bigutils.ParseU256(args[0])
				if !ok {
					return errors.Errorf("invalid header block id %q", args[0])
				}
				id = u.ToBig()
			}

			rctx := context.Background()
			client, err := dial(rctx, ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			reader := rootchain.NewReader(client, ctx.Config.RootChain(), ctx.Logger.With("module", "rootchain"))
			out, err := readRootChain(rctx, reader, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

type rootChainState struct {
	CurrentHeaderBlock *big.Int              `json:"currentHeaderBlock"`
	HeaderBlock        *rootchain.Checkpoint `json:"headerBlock"`
}

func readRootChain(ctx context.Context, reader *rootchain.Reader, id *big.Int) (*rootChainState, error) {
	current, err := reader.CurrentHeaderBlock(ctx)
	if err != nil {
		return nil, err
	}
	if id == nil {
		id = current
	}
	cp, err := reader.HeaderBlock(ctx, id)
	if err != nil {
		return nil, err
	}
	return &rootChainState{CurrentHeaderBlock: current, HeaderBlock: cp}, nil
}

type stakeReport struct {
	State      *staking.StakeManagerState `json:"state"`
	TotalStake *big.Int                   `json:"totalStake,omitempty"`
	Deposit    *big.Int                   `json:"deposit"`
	Value      *big.Int                   `json:"value"`
	Signer     *account.Identity          `json:"signer,omitempty"`
	StakeCall  hexutil.Bytes              `json:"stakeCallData,omitempty"`
	UnsignedTx hexutil.Bytes              `json:"unsignedTx,omitempty"`
}

func ReadStakeManagerCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read-stake-manager",
		Short: "Read StakeManager state and derive the amounts of a stake call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signerKey, _ := cmd.Flags().GetString(flagSignerKey)
			acceptDelegation, _ := cmd.Flags().GetBool(flagDelegation)
			nonce, _ := cmd.Flags().GetUint64(flagNonce)
			gasLimit, _ := cmd.Flags().GetUint64(flagGasLimit)
			gasPriceStr, _ := cmd.Flags().GetString(flagGasPrice)

			rctx := context.Background()
			client, err := dial(rctx, ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			reader := staking.NewReader(client, ctx.Config.StakeManager(), ctx.Logger.With("module", "staking"))
			state, err := reader.ReadState(rctx)
			if err != nil {
				return err
			}
			out := &stakeReport{State: state}
			if out.TotalStake, err = reader.TotalStake(rctx); err != nil {
				ctx.Logger.Error("currentValidatorSetTotalStake failed", "err", err)
			}

			amounts, err := staking.ComputeStakeAmounts(state.MinDeposit, state.MinHeimdallFee)
			if err != nil {
				return err
			}
			out.Deposit, out.Value = amounts.Deposit.ToBig(), amounts.Value.ToBig()

			if signerKey == "" {
				return printJSON(cmd.OutOrStdout(), out)
			}
			if out.Signer, err = account.FromPrivateKey(signerKey); err != nil {
				return err
			}
			// the contract takes the 64-byte X || Y form
			pubkey, err := hexutil.Decode("0x" + out.Signer.PublicKey[2:])
			if err != nil {
				return err
			}
			if out.StakeCall, err = staking.PackStake(amounts, state.MinHeimdallFee, acceptDelegation, pubkey); err != nil {
				return err
			}

			gasPrice, err := parseGasPrice(gasPriceStr)
			if err != nil {
				return err
			}
			if gasPrice == nil {
				if gasPrice, err = client.SuggestGasPrice(rctx); err != nil {
					return err
				}
			}
			tx, err := staking.NewStakeTx(nonce, ctx.Config.StakeManager(), amounts, state.MinHeimdallFee,
				acceptDelegation, pubkey, gasLimit, gasPrice)
			if err != nil {
				return err
			}
			if out.UnsignedTx, err = ethutils.EncodeTx(tx); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().String(flagSignerKey, "", "private key of the staker, enables stake call data output")
	cmd.Flags().Bool(flagDelegation, false, "accept delegation for the new validator")
	cmd.Flags().Uint64(flagNonce, 0, "nonce of the unsigned stake transaction")
	cmd.Flags().Uint64(flagGasLimit, param.DefaultGasLimit, "gas limit of the unsigned stake transaction")
	cmd.Flags().String(flagGasPrice, "", "gas price in wei, suggested by the node when empty")
	return cmd
}

// parseGasPrice returns nil for an empty string.
func parseGasPrice(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	u, ok := bigutils.ParseU256(s)
	if !ok {
		return nil, errors.Errorf("invalid gas price %q", s)
	}
	return u.ToBig(), nil
}
