package param

import (
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	AppName         = "stakectl"
	DefaultLogLevel = "main:info,rootchain:info,staking:info,*:error"
	EnvPrefix       = "SP"
)

var (
	DefaultHome = os.ExpandEnv("$HOME/." + AppName)
)

type AppConfig struct {
	// json-rpc endpoint of the root chain
	RPCUrl string `mapstructure:"rpc-url"`

	StakeManagerAddress string `mapstructure:"stake-manager"`
	RootChainAddress    string `mapstructure:"root-chain"`

	LogLevel string `mapstructure:"log_level"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		RPCUrl:              DefaultRPCUrl,
		StakeManagerAddress: DefaultStakeManagerAddress,
		RootChainAddress:    DefaultRootChainAddress,
		LogLevel:            DefaultLogLevel,
	}
}

func ConfigFilePath(home string) string {
	return filepath.Join(home, "config", "app.toml")
}

func (c *AppConfig) Validate() error {
	if c.RPCUrl == "" {
		return errors.New("rpc-url is empty")
	}
	if !common.IsHexAddress(c.StakeManagerAddress) {
		return errors.Errorf("invalid stake-manager address %q", c.StakeManagerAddress)
	}
	if !common.IsHexAddress(c.RootChainAddress) {
		return errors.Errorf("invalid root-chain address %q", c.RootChainAddress)
	}
	return nil
}

func (c *AppConfig) StakeManager() common.Address {
	return common.HexToAddress(c.StakeManagerAddress)
}

func (c *AppConfig) RootChain() common.Address {
	return common.HexToAddress(c.RootChainAddress)
}
