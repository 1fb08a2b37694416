package main

import (
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/viswanathkgp12/matic-security-hackathon/param"
)

func main() {
	rootCmd := createStakeCtlCmd()
	executor := cli.PrepareBaseCmd(rootCmd, param.EnvPrefix, param.DefaultHome)
	err := executor.Execute()
	if err != nil {
		// Execute has already reported the error and exited
		panic(err)
	}
}

func createStakeCtlCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	ctx := NewDefaultContext()
	rootCmd := &cobra.Command{
		Use:               "stakectl",
		Short:             "Read and decode StakeManager and RootChain contract data",
		PersistentPreRunE: PersistentPreRunEFn(ctx),
	}
	rootCmd.PersistentFlags().String(flagRPCUrl, "", "json-rpc endpoint, overrides rpc-url in app.toml")
	rootCmd.PersistentFlags().String(flagStakeManager, "", "StakeManager address, overrides stake-manager in app.toml")
	rootCmd.PersistentFlags().String(flagRootChain, "", "RootChain address, overrides root-chain in app.toml")

	rootCmd.AddCommand(InitCmd(ctx))
	rootCmd.AddCommand(ConfigCmd(ctx))
	rootCmd.AddCommand(DeriveAddressCmd(ctx))
	rootCmd.AddCommand(GenKeysCmd(ctx))
	rootCmd.AddCommand(DecodeReturnCmd(ctx))
	rootCmd.AddCommand(DecodeHeaderBlockCmd(ctx))
	rootCmd.AddCommand(ReplayHeaderBlockCmd(ctx))
	rootCmd.AddCommand(ReadRootChainCmd(ctx))
	rootCmd.AddCommand(ReadStakeManagerCmd(ctx))
	return rootCmd
}
