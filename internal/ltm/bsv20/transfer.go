package bsv20

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
)

// PubKeyHashSize is the length of a HASH160 public-key hash.
const PubKeyHashSize = 20

const p2pkhSize = 25

// TokenOutputValue is the satoshi value carried by every token output.
const TokenOutputValue = 1

var ErrInvalidPubKeyHash = errors.New("public key hash must be 20 bytes")

// Transfer is a decoded bsv-20 transfer output.
type Transfer struct {
	Recipient []byte
	ID        string
	Amount    uint64
}

// PayToPubKeyHash returns OP_DUP OP_HASH160 <pkh> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHash(pkh []byte) ([]byte, error) {
	if len(pkh) != PubKeyHashSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPubKeyHash, len(pkh))
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(pkh).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// TransferScript returns the transfer inscription followed by P2PKH(recipient).
func TransferScript(recipient []byte, id string, amount uint64) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: transfer without token id", ErrUnexpectedFormat)
	}
	lock, err := PayToPubKeyHash(recipient)
	if err != nil {
		return nil, err
	}
	ins, err := transferInscription(id, amount).envelope()
	if err != nil {
		return nil, err
	}
	return append(ins, lock...), nil
}

// EncodeTransfer serializes a one-satoshi output paying amount units of id to recipient.
func (c *Codec) EncodeTransfer(recipient []byte, id string, amount uint64) ([]byte, error) {
	script, err := TransferScript(recipient, id, amount)
	if err != nil {
		return nil, err
	}
	return txout.Wrap(script, TokenOutputValue)
}

// DecodeTransfer parses a transfer output script.
func (c *Codec) DecodeTransfer(script []byte) (Transfer, error) {
	ins, end, err := parseEnvelope(script)
	if err != nil {
		return Transfer{}, err
	}
	if ins.Op != opTransfer || ins.ID == "" {
		return Transfer{}, fmt.Errorf("%w: op %q", ErrUnexpectedFormat, ins.Op)
	}
	amount, err := ins.amount()
	if err != nil {
		return Transfer{}, err
	}
	lock := script[end:]
	if len(lock) != p2pkhSize || !txscript.IsPayToPubKeyHash(lock) {
		return Transfer{}, fmt.Errorf("%w: transfer is not locked to a public key hash", ErrUnexpectedFormat)
	}
	return Transfer{
		Recipient: append([]byte(nil), lock[3:3+PubKeyHashSize]...),
		ID:        ins.ID,
		Amount:    amount,
	}, nil
}
