// Package account derives an Ethereum-style account identity from a raw
// secp256k1 private key.
package account

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
)

const privKeyHexLen = 64

var (
	InvalidKeyFormat = errors.New("invalid private key format")
)

// Identity is the account a private key controls. All fields are lowercase
// hex without a 0x prefix: PublicKey is the 65-byte uncompressed point
// (04 || X || Y), Address the last 20 bytes of keccak256(X || Y).
type Identity struct {
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// Account returns the address as a typed value.
func (id *Identity) Account() common.Address {
	return common.HexToAddress(id.Address)
}

// FromPrivateKey derives the identity of a 32-byte hex private key with an
// optional 0x prefix. The scalar must lie in [1, N-1] where N is the
// secp256k1 group order.
func FromPrivateKey(privateKeyHex string) (*Identity, error) {
	keyHex := ethutils.TrimHexPrefix(privateKeyHex)
	if len(keyHex) != privKeyHexLen {
		return nil, errors.Wrapf(InvalidKeyFormat, "want %d hex chars, got %d", privKeyHexLen, len(keyHex))
	}
	privKey, raw, err := ethutils.HexToPrivKey(keyHex)
	if err != nil {
		return nil, errors.Wrap(InvalidKeyFormat, err.Error())
	}

	pubKey := crypto.FromECDSAPub(&privKey.PublicKey)
	addr := ethutils.PrivKeyToAddr(privKey)
	return &Identity{
		PublicKey:  hex.EncodeToString(pubKey),
		Address:    hex.EncodeToString(addr.Bytes()),
		PrivateKey: hex.EncodeToString(raw),
	}, nil
}

func MustFromPrivateKey(privateKeyHex string) *Identity {
	id, err := FromPrivateKey(privateKeyHex)
	if err != nil {
		panic(err)
	}
	return id
}

// Generate derives the identity of a fresh random private key.
func Generate() (*Identity, error) {
	privKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return FromPrivateKey(hex.EncodeToString(crypto.FromECDSA(privKey)))
}
