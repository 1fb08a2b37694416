package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/viswanathkgp12/matic-security-hackathon/param"
)

func ConfigCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <key> [value]",
		Short: "print or modify app.toml",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCmd(cmd, param.ConfigFilePath(ctx.Home), args)
		},
	}
	return cmd
}

func runConfigCmd(cmd *cobra.Command, cfgFile string, args []string) error {
	tree, err := loadConfigFile(cfgFile)
	if err != nil {
		return err
	}

	// print the config and exit
	if len(args) == 0 {
		s, err := tree.ToTomlString()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
		return nil
	}
	key := args[0]
	if len(args) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), tree.Get(key))
		return nil
	}
	value := args[1]

	switch key {
	case "rpc-url":
		tree.Set(key, value)
	case "stake-manager", "root-chain":
		if !common.IsHexAddress(value) {
			return fmt.Errorf("invalid address: %q", value)
		}
		tree.Set(key, value)
	case "log_level":
		if _, err := tmflags.ParseLogLevel(value, log.NewNopLogger(), "info"); err != nil {
			return err
		}
		tree.Set(key, value)
	default:
		return errUnknownConfigKey(key)
	}

	// save configuration to disk
	if err := saveConfigFile(cfgFile, tree); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "configuration saved to %s\n", cfgFile)
	return nil
}

func loadConfigFile(cfgFile string) (*toml.Tree, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s does not exist, run init first", cfgFile)
	}

	bz, err := ioutil.ReadFile(cfgFile)
	if err != nil {
		return nil, err
	}

	tree, err := toml.LoadBytes(bz)
	if err != nil {
		return nil, err
	}

	return tree, nil
}

func saveConfigFile(cfgFile string, tree *toml.Tree) error {
	fp, err := os.OpenFile(cfgFile, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer fp.Close()

	_, err = tree.WriteTo(fp)
	return err
}

func errUnknownConfigKey(key string) error {
	return fmt.Errorf("unknown configuration key: %q", key)
}
