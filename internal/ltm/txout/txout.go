// Package txout implements the ledger's output wire format and the outputs commitment hash.
package txout

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
)

// Wrap serializes a script and its amount as a transaction output:
// 8-byte little-endian amount, varint script length, script bytes.
func Wrap(script []byte, amount uint64) ([]byte, error) {
	value, err := safe.Int64(amount)
	if err != nil {
		return nil, fmt.Errorf("output amount: %w", err)
	}
	var buf bytes.Buffer
	buf.Grow(8 + wire.VarIntSerializeSize(uint64(len(script))) + len(script))
	if err := wire.WriteTxOut(&buf, 0, wire.TxVersion, wire.NewTxOut(value, script)); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return buf.Bytes(), nil
}

// FromTxOut serializes an already decoded wire output.
func FromTxOut(out *wire.TxOut) ([]byte, error) {
	if out.Value < 0 {
		return nil, fmt.Errorf("negative output value %d", out.Value)
	}
	return Wrap(out.PkScript, uint64(out.Value))
}

// Concat joins serialized outputs in order.
func Concat(outputs [][]byte) []byte {
	size := 0
	for _, o := range outputs {
		size += len(o)
	}
	joined := make([]byte, 0, size)
	for _, o := range outputs {
		joined = append(joined, o...)
	}
	return joined
}

// HashOutputs returns the double SHA-256 of the concatenated outputs,
// the value a transaction commits to as hashOutputs.
func HashOutputs(outputs [][]byte) chainhash.Hash {
	return chainhash.DoubleHashH(Concat(outputs))
}

// Split parses a concatenation of serialized outputs back into wire outputs.
func Split(raw []byte) ([]*wire.TxOut, error) {
	r := bytes.NewReader(raw)
	var outs []*wire.TxOut
	for r.Len() > 0 {
		out, err := read(r)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", len(outs), err)
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// Parse decodes exactly one serialized output.
func Parse(raw []byte) (*wire.TxOut, error) {
	r := bytes.NewReader(raw)
	out, err := read(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after output", r.Len())
	}
	return out, nil
}

func read(r *bytes.Reader) (*wire.TxOut, error) {
	var amount [8]byte
	if _, err := io.ReadFull(r, amount[:]); err != nil {
		return nil, fmt.Errorf("read amount: %w", err)
	}
	value, err := safe.Int64(binary.LittleEndian.Uint64(amount[:]))
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	length, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("read script length: %w", err)
	}
	if length > uint64(r.Len()) {
		return nil, fmt.Errorf("script length %d exceeds remaining %d bytes", length, r.Len())
	}
	script := make([]byte, length)
	if _, err := io.ReadFull(r, script); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return wire.NewTxOut(value, script), nil
}
