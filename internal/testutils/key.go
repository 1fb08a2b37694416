package testutils

var TestKeys = []string{
	"0xe3d9be2e6430a9db8291ab1853f5ec2467822b33a1a08825a22fab1425d2bff9",
	"0x5a09e9d6be2cdc7de8f6beba300e52823493cd23357b1ca14a9c36764d600f5e",
	"0x7e01af236f9c9536d9d28b07cea24ccf21e21c9bc9f2b2c11471cd82dbb63162",
	"0x1f67c31733dc3fd02c1f9ce9cb9e05b1d2f1b7b5463fef8acf6cf17f3bd01467",
	"0x8aa75c97b22e743e2d14a0472406f03cc5b4a050e8d4300040002096f50c0c6f",
}

// StakerKey is the throwaway wallet the staking commands sign with, kept in the
// upper-case, unprefixed form it was recorded in.
const (
	StakerKey     = "574359B1F0297AEFA3C236B6EDE4A2AEEB09886F36C46DD5638FDAF198483F8C"
	StakerAddress = "0x3005608304e10eA3713Dc4B366d45E82c5211753"
)
