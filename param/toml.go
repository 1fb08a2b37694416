package param

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# json-rpc endpoint of the root chain
rpc-url = "{{ .RPCUrl }}"

# StakeManager contract
stake-manager = "{{ .StakeManagerAddress }}"

# RootChain contract receiving the checkpoints
root-chain = "{{ .RootChainAddress }}"

# module:level pairs, e.g. "main:info,staking:debug,*:error"
log_level = "{{ .LogLevel }}"
`

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("appConfigFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// ParseConfig loads <home>/config/app.toml over the defaults. Every key can be
// overridden by an SP_ environment variable, e.g. SP_RPC_URL.
func ParseConfig(home string) (*AppConfig, error) {
	v := viper.New()
	def := DefaultAppConfig()
	v.SetDefault("rpc-url", def.RPCUrl)
	v.SetDefault("stake-manager", def.StakeManagerAddress)
	v.SetDefault("root-chain", def.RootChainAddress)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := ConfigFilePath(home)
	if _, err := os.Stat(cfgFile); err == nil {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read %s", cfgFile)
		}
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func WriteConfigFile(configFilePath string, config *AppConfig) {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}
	if err := tmos.EnsureDir(filepath.Dir(configFilePath), 0700); err != nil {
		panic(err)
	}
	tmos.MustWriteFile(configFilePath, buffer.Bytes(), 0644)
}
