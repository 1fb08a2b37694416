//go:build params_mainnet
// +build params_mainnet

package param

// network params of the ethereum mainnet proxies
const (
	DefaultRPCUrl              = "http://localhost:8545"
	DefaultStakeManagerAddress = "0x5e3Ef299fDDf15eAa0432E6e66473ace8c13D908"
	DefaultRootChainAddress    = "0x86E4Dc95c7FBdBf52e33D563BbDB00823894C287"

	DefaultGasLimit uint64 = 300_000
)
