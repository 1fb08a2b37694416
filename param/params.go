//go:build !params_mainnet
// +build !params_mainnet

package param

// network params of the staking testbed
const (
	DefaultRPCUrl              = "http://18.209.48.15:80"
	DefaultStakeManagerAddress = "0x5d8116c1d0026869a2025731eA9E383CB9b62bD4"
	DefaultRootChainAddress    = "0x2890bA17EfE978480615e330ecB65333b880928e"

	// gas limit for the stake transaction
	DefaultGasLimit uint64 = 300_000
)
