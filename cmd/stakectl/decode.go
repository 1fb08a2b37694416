package main

import (
	"io/ioutil"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/viswanathkgp12/matic-security-hackathon/abicodec"
	"github.com/viswanathkgp12/matic-security-hackathon/rootchain"
)

const (
	flagABI    = "abi"
	flagMethod = "method"
	flagTypes  = "types"
	flagRawTx  = "raw-tx"
)

func DecodeReturnCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-return <hex>",
		Short: "Decode eth_call return data",
		Long: `Decode eth_call return data against the outputs of --method in the --abi file,
or against an ad hoc parameter list such as --types "address proposer,uint256 start".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abiFile, _ := cmd.Flags().GetString(flagABI)
			method, _ := cmd.Flags().GetString(flagMethod)
			types, _ := cmd.Flags().GetString(flagTypes)

			var res abicodec.Result
			var err error
			switch {
			case abiFile != "" && method != "":
				var reg *abicodec.Registry
				if reg, err = loadRegistry(abiFile); err != nil {
					return err
				}
				res, err = abicodec.DecodeMethodReturn(reg, method, args[0])
			case types != "":
				var schema abicodec.Schema
				if schema, err = parseSchemaFlag(types); err != nil {
					return err
				}
				res, err = abicodec.Decode(schema, args[0])
			default:
				return errors.New("either --abi and --method or --types is required")
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().String(flagABI, "", "contract ABI JSON file")
	cmd.Flags().String(flagMethod, "", "method whose outputs describe the data")
	cmd.Flags().String(flagTypes, "", "comma separated \"type [name]\" list")
	return cmd
}

func DecodeHeaderBlockCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-header-block <hex>",
		Short: "Decode submitHeaderBlock call data and the header block it carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawTx, _ := cmd.Flags().GetBool(flagRawTx)
			var call *rootchain.HeaderBlockCall
			var err error
			if rawTx {
				var bz []byte
				if bz, err = hexutil.Decode(args[0]); err != nil {
					return err
				}
				call, err = rootchain.DecodeRawTx(bz)
			} else {
				call, err = rootchain.DecodeSubmitHeaderBlockHex(args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), call)
		},
	}
	cmd.Flags().Bool(flagRawTx, false, "the argument is an RLP-encoded transaction")
	return cmd
}

func loadRegistry(abiFile string) (*abicodec.Registry, error) {
	bz, err := ioutil.ReadFile(abiFile)
	if err != nil {
		return nil, err
	}
	return abicodec.ParseRegistry(string(bz))
}

func parseSchemaFlag(types string) (abicodec.Schema, error) {
	decls := strings.Split(types, ",")
	for i := range decls {
		decls[i] = strings.TrimSpace(decls[i])
	}
	return abicodec.NewSchema(decls...)
}
