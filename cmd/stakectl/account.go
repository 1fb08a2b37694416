package main

import (
	"github.com/spf13/cobra"

	"github.com/viswanathkgp12/matic-security-hackathon/account"
)

const (
	flagNumber = "number"
)

func DeriveAddressCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "derive-address <private-key>",
		Short: "Derive the public key and address of a hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := account.FromPrivateKey(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), id)
		},
	}
}

func GenKeysCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-keys",
		Short: "generate private keys for test purpose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetUint(flagNumber)
			ids := make([]*account.Identity, 0, n)
			for i := uint(0); i < n; i++ {
				id, err := account.Generate()
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return printJSON(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().UintP(flagNumber, "n", 1, "how many keys to generate")
	return cmd
}
