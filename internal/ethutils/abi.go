package ethutils

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

type ABIWrapper struct {
	_abi abi.ABI
}

func (a ABIWrapper) GetABI() abi.ABI {
	return a._abi
}

func ParseABI(abiJSON string) (ABIWrapper, error) {
	_abi, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return ABIWrapper{}, err
	}
	return ABIWrapper{_abi}, nil
}
