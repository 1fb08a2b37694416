package bigutils

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

func NewU256(u64 uint64) *uint256.Int {
	return uint256.NewInt(u64)
}

// FromBig converts v, reporting false when v is negative or wider than 256 bits.
func FromBig(v *big.Int) (*uint256.Int, bool) {
	if v == nil || v.Sign() < 0 {
		return nil, false
	}
	u, overflow := uint256.FromBig(v)
	return u, !overflow
}

// AddU256 returns a+b, reporting false on 256-bit overflow.
func AddU256(a, b *uint256.Int) (*uint256.Int, bool) {
	return FromBig(new(big.Int).Add(a.ToBig(), b.ToBig()))
}

func ParseU256(s string) (*uint256.Int, bool) {
	i := big.NewInt(0)
	ok := false
	if strings.HasPrefix(s, "0x") {
		i, ok = i.SetString(s[2:], 16)
	} else {
		i, ok = i.SetString(s, 10)
	}
	if ok {
		return FromBig(i)
	}
	return nil, false
}
