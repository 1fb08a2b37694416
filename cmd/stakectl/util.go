package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/viswanathkgp12/matic-security-hackathon/param"
)

const (
	flagRPCUrl       = "rpc-url"
	flagStakeManager = "stake-manager"
	flagRootChain    = "root-chain"
)

func PersistentPreRunEFn(context *Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		home := viper.GetString(cli.HomeFlag)
		if home == "" {
			home = param.DefaultHome
		}
		config, err := param.ParseConfig(home)
		if err != nil {
			return err
		}
		overrideFromFlags(cmd, config)

		logger, err := newLogger(os.Stderr, config.LogLevel)
		if err != nil {
			return err
		}
		context.Home = home
		context.Config = config
		context.Logger = logger
		return nil
	}
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	logger, err := tmflags.ParseLogLevel(level, logger, "info")
	if err != nil {
		return nil, err
	}
	return logger.With("module", "main"), nil
}

func overrideFromFlags(cmd *cobra.Command, config *param.AppConfig) {
	set := func(name string, dst *string) {
		if f := cmd.Flag(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	set(flagRPCUrl, &config.RPCUrl)
	set(flagStakeManager, &config.StakeManagerAddress)
	set(flagRootChain, &config.RootChainAddress)
}

func printJSON(w io.Writer, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
