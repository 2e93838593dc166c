package bsv20

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

// stateVersion is the trailing byte of every serialized state section.
const stateVersion = 0x00

var (
	ErrMalformedState = errors.New("malformed covenant state")
	ErrForeignCode    = errors.New("covenant code does not match")
)

// Codec encodes lock-to-mint state-carry scripts:
//
//	<inscription> <covenant code> OP_RETURN <state> <uint32 LE len(state)> <version>
//
// The inscription is deploy+mint while the token id is unbound and a transfer of
// the remaining supply afterwards. The covenant code is opaque to the codec.
type Codec struct {
	code []byte
}

// NewCodec returns a codec for covenant outputs carrying the given compiled code.
func NewCodec(code []byte) *Codec {
	return &Codec{code: append([]byte(nil), code...)}
}

// Code returns a copy of the covenant code bytes.
func (c *Codec) Code() []byte {
	return append([]byte(nil), c.code...)
}

// EncodeState renders the state-carry script for s.
func (c *Codec) EncodeState(s model.TokenState) ([]byte, error) {
	var ins inscription
	if s.IsGenesis() {
		ins = deployMintInscription(s.Symbol, s.Supply, s.Decimals)
	} else {
		ins = transferInscription(s.ID, s.Supply)
	}
	envelope, err := ins.envelope()
	if err != nil {
		return nil, err
	}

	state := encodeStateData(s)
	script := make([]byte, 0, len(envelope)+len(c.code)+1+len(state)+5)
	script = append(script, envelope...)
	script = append(script, c.code...)
	script = append(script, txscript.OP_RETURN)
	script = append(script, state...)
	script = binary.LittleEndian.AppendUint32(script, uint32(len(state)))
	script = append(script, stateVersion)
	return script, nil
}

// DecodeState recovers the token state from a state-carry script produced by EncodeState.
func (c *Codec) DecodeState(script []byte) (model.TokenState, error) {
	ins, end, err := parseEnvelope(script)
	if err != nil {
		return model.TokenState{}, err
	}
	if len(script) < end+6 {
		return model.TokenState{}, fmt.Errorf("%w: script too short", ErrMalformedState)
	}
	if script[len(script)-1] != stateVersion {
		return model.TokenState{}, fmt.Errorf("%w: version %d", ErrMalformedState, script[len(script)-1])
	}
	size := uint64(binary.LittleEndian.Uint32(script[len(script)-5 : len(script)-1]))
	if size+6 > uint64(len(script)-end) {
		return model.TokenState{}, fmt.Errorf("%w: state length %d", ErrMalformedState, size)
	}
	stateStart := len(script) - 5 - int(size)
	if script[stateStart-1] != txscript.OP_RETURN {
		return model.TokenState{}, fmt.Errorf("%w: missing OP_RETURN", ErrMalformedState)
	}
	if !bytes.Equal(script[end:stateStart-1], c.code) {
		return model.TokenState{}, ErrForeignCode
	}

	s, err := decodeStateData(script[stateStart : len(script)-5])
	if err != nil {
		return model.TokenState{}, err
	}
	if err := checkInscription(ins, s); err != nil {
		return model.TokenState{}, err
	}
	return s, nil
}

func checkInscription(ins inscription, s model.TokenState) error {
	amt, err := ins.amount()
	if err != nil {
		return err
	}
	if amt != s.Supply {
		return fmt.Errorf("%w: inscription amount %d, state supply %d", ErrMalformedState, amt, s.Supply)
	}
	switch ins.Op {
	case opDeployMint:
		if !s.IsGenesis() || ins.Sym != s.Symbol {
			return fmt.Errorf("%w: deploy inscription does not match state", ErrMalformedState)
		}
	case opTransfer:
		if ins.ID != s.ID {
			return fmt.Errorf("%w: inscription id %q, state id %q", ErrMalformedState, ins.ID, s.ID)
		}
	default:
		return fmt.Errorf("%w: op %q", ErrUnexpectedFormat, ins.Op)
	}
	return nil
}

func encodeStateData(s model.TokenState) []byte {
	var buf bytes.Buffer
	writeString(&buf, s.ID)
	writeString(&buf, s.Symbol)
	_ = binary.Write(&buf, binary.LittleEndian, s.Max)
	buf.WriteByte(s.Decimals)
	_ = binary.Write(&buf, binary.LittleEndian, s.Supply)
	_ = binary.Write(&buf, binary.LittleEndian, s.LockDuration)
	_ = binary.Write(&buf, binary.LittleEndian, s.Multiplier)
	_ = binary.Write(&buf, binary.LittleEndian, s.LastHeight)
	return buf.Bytes()
}

func decodeStateData(data []byte) (model.TokenState, error) {
	r := bytes.NewReader(data)
	var s model.TokenState
	var err error
	if s.ID, err = readString(r); err != nil {
		return model.TokenState{}, fmt.Errorf("%w: id: %v", ErrMalformedState, err)
	}
	if s.Symbol, err = readString(r); err != nil {
		return model.TokenState{}, fmt.Errorf("%w: symbol: %v", ErrMalformedState, err)
	}
	fields := []any{&s.Max, &s.Decimals, &s.Supply, &s.LockDuration, &s.Multiplier, &s.LastHeight}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return model.TokenState{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
		}
	}
	if r.Len() != 0 {
		return model.TokenState{}, fmt.Errorf("%w: %d trailing bytes", ErrMalformedState, r.Len())
	}
	if s.Supply > s.Max {
		return model.TokenState{}, fmt.Errorf("%w: supply %d above max %d", ErrMalformedState, s.Supply, s.Max)
	}
	return s, nil
}

func writeString(buf *bytes.Buffer, v string) {
	_ = wire.WriteVarString(buf, 0, v)
}

func readString(r *bytes.Reader) (string, error) {
	n, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return "", err
	}
	if n > uint64(r.Len()) {
		return "", io.ErrUnexpectedEOF
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
