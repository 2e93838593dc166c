// Package bsv20 encodes and decodes BSV-20 v2 token outputs: ordinal inscriptions,
// transfer outputs and the lock-to-mint state-carry script.
package bsv20

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/txscript"
)

const (
	protocol    = "bsv-20"
	contentType = "application/bsv-20"

	opTransfer   = "transfer"
	opDeployMint = "deploy+mint"
)

var (
	ErrNotInscription   = errors.New("script does not start with an ordinal inscription")
	ErrUnexpectedFormat = errors.New("unexpected bsv-20 payload")
)

// inscription is the JSON body of a bsv-20 v2 inscription. Field order is the wire order.
type inscription struct {
	P   string `json:"p"`
	Op  string `json:"op"`
	ID  string `json:"id,omitempty"`
	Sym string `json:"sym,omitempty"`
	Amt string `json:"amt"`
	Dec string `json:"dec,omitempty"`
}

func transferInscription(id string, amt uint64) inscription {
	return inscription{P: protocol, Op: opTransfer, ID: id, Amt: strconv.FormatUint(amt, 10)}
}

func deployMintInscription(sym string, amt uint64, dec uint8) inscription {
	return inscription{
		P:   protocol,
		Op:  opDeployMint,
		Sym: sym,
		Amt: strconv.FormatUint(amt, 10),
		Dec: strconv.FormatUint(uint64(dec), 10),
	}
}

func (i inscription) amount() (uint64, error) {
	amt, err := strconv.ParseUint(i.Amt, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amt %q", ErrUnexpectedFormat, i.Amt)
	}
	return amt, nil
}

// envelope renders OP_FALSE OP_IF "ord" OP_1 <content type> OP_0 <json> OP_ENDIF.
func (i inscription) envelope() ([]byte, error) {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(i); err != nil {
		return nil, fmt.Errorf("encode inscription: %w", err)
	}
	payload := bytes.TrimSuffix(body.Bytes(), []byte("\n"))

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_FALSE).
		AddOp(txscript.OP_IF).
		AddData([]byte("ord")).
		AddOp(txscript.OP_1).
		AddData([]byte(contentType)).
		AddOp(txscript.OP_0).
		AddData(payload).
		AddOp(txscript.OP_ENDIF).
		Script()
}

// parseEnvelope reads a leading inscription envelope and returns it with the
// byte offset right after OP_ENDIF.
func parseEnvelope(script []byte) (inscription, int, error) {
	tok := txscript.MakeScriptTokenizer(0, script)

	expectOp := func(op byte) error {
		if !tok.Next() || tok.Opcode() != op {
			return ErrNotInscription
		}
		return nil
	}
	expectData := func() ([]byte, error) {
		if !tok.Next() || tok.Opcode() > txscript.OP_PUSHDATA4 {
			return nil, ErrNotInscription
		}
		return tok.Data(), nil
	}

	if err := expectOp(txscript.OP_FALSE); err != nil {
		return inscription{}, 0, err
	}
	if err := expectOp(txscript.OP_IF); err != nil {
		return inscription{}, 0, err
	}
	tag, err := expectData()
	if err != nil || string(tag) != "ord" {
		return inscription{}, 0, ErrNotInscription
	}
	// content type field tag: OP_1, or a one byte push of 0x01
	if !tok.Next() {
		return inscription{}, 0, ErrNotInscription
	}
	if tok.Opcode() != txscript.OP_1 && !bytes.Equal(tok.Data(), []byte{0x01}) {
		return inscription{}, 0, ErrNotInscription
	}
	ct, err := expectData()
	if err != nil {
		return inscription{}, 0, err
	}
	if string(ct) != contentType {
		return inscription{}, 0, fmt.Errorf("%w: content type %q", ErrUnexpectedFormat, ct)
	}
	if err := expectOp(txscript.OP_0); err != nil {
		return inscription{}, 0, err
	}
	payload, err := expectData()
	if err != nil {
		return inscription{}, 0, err
	}
	if err := expectOp(txscript.OP_ENDIF); err != nil {
		return inscription{}, 0, err
	}
	if tok.Err() != nil {
		return inscription{}, 0, fmt.Errorf("%w: %v", ErrNotInscription, tok.Err())
	}

	var ins inscription
	if err := json.Unmarshal(payload, &ins); err != nil {
		return inscription{}, 0, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if ins.P != protocol {
		return inscription{}, 0, fmt.Errorf("%w: protocol %q", ErrUnexpectedFormat, ins.P)
	}
	return ins, int(tok.ByteIndex()), nil
}
