package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

// ChainParams returns the address and port parameters of network.
// BSV shares the legacy address version bytes with the corresponding Bitcoin networks.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "test", "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// PubKeyHash decodes a pay-to-pubkey-hash address into its 20-byte hash.
func PubKeyHash(address string, network model.Network) ([]byte, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", address, err)
	}
	pkh, ok := addr.(*btcutil.AddressPubKeyHash)
	if !ok {
		return nil, fmt.Errorf("address %q is not pay-to-pubkey-hash", address)
	}
	if !pkh.IsForNet(params) {
		return nil, fmt.Errorf("address %q is not for %s", address, network)
	}
	return pkh.ScriptAddress(), nil
}

// Address encodes a 20-byte public-key hash as an address on network.
func Address(pubKeyHash []byte, network model.Network) (string, error) {
	params, err := ChainParams(network)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressPubKeyHash(pubKeyHash, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
