package main

import (
	"fmt"

	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"

	"github.com/viswanathkgp12/matic-security-hackathon/param"
)

const (
	flagOverwrite = "overwrite"
)

func InitCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default app.toml under the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			cfgFile := param.ConfigFilePath(ctx.Home)
			if !overwrite && tmos.FileExists(cfgFile) {
				return fmt.Errorf("app.toml file already exists: %v", cfgFile)
			}
			param.WriteConfigFile(cfgFile, param.DefaultAppConfig())
			fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
			return nil
		},
	}
	cmd.Flags().BoolP(flagOverwrite, "o", false, "overwrite the app.toml file")
	return cmd
}
