package covenant

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
)

// pushPubKeyHash is the push opcode for a 20-byte hash.
const pushPubKeyHash = 0x14

// LockScript fills the template: prefix 0x14 <pkh> <width> <lockUntil LE> suffix.
func (v Variant) LockScript(recipientHash []byte, lockUntil uint64) ([]byte, error) {
	if len(recipientHash) != bsv20.PubKeyHashSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrMalformedRecipientHash, len(recipientHash))
	}
	if lockUntil > v.maxLockUntil() {
		return nil, fmt.Errorf("%w: lock until %d in %d bytes", ErrEncodingWidthExceeded, lockUntil, v.LockUntilWidth)
	}

	t := v.Template
	script := make([]byte, 0, len(t.Prefix)+2+bsv20.PubKeyHashSize+v.LockUntilWidth+len(t.Suffix))
	script = append(script, t.Prefix...)
	script = append(script, pushPubKeyHash)
	script = append(script, recipientHash...)
	script = append(script, byte(v.LockUntilWidth))
	for i := 0; i < v.LockUntilWidth; i++ {
		script = append(script, byte(lockUntil>>(8*uint(i))))
	}
	script = append(script, t.Suffix...)
	return script, nil
}

// BuildLockOutput serializes the output paying lockAmount to the lock script.
func (v Variant) BuildLockOutput(recipientHash []byte, lockAmount, lockUntil uint64) ([]byte, error) {
	script, err := v.LockScript(recipientHash, lockUntil)
	if err != nil {
		return nil, err
	}
	out, err := txout.Wrap(script, lockAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: lock amount %d: %v", ErrAmountOutOfRange, lockAmount, err)
	}
	return out, nil
}

// ParseLockScript extracts the recipient hash and unlock height from a script built by LockScript.
func (v Variant) ParseLockScript(script []byte) ([]byte, uint64, error) {
	t := v.Template
	want := len(t.Prefix) + 2 + bsv20.PubKeyHashSize + v.LockUntilWidth + len(t.Suffix)
	if len(script) != want {
		return nil, 0, fmt.Errorf("not a %s lock script: length %d, want %d", v.Name, len(script), want)
	}
	if !bytes.HasPrefix(script, t.Prefix) || !bytes.HasSuffix(script, t.Suffix) {
		return nil, 0, fmt.Errorf("not a %s lock script: template %s mismatch", v.Name, t.Version)
	}

	body := script[len(t.Prefix) : len(script)-len(t.Suffix)]
	if body[0] != pushPubKeyHash || body[1+bsv20.PubKeyHashSize] != byte(v.LockUntilWidth) {
		return nil, 0, fmt.Errorf("not a %s lock script: bad parameter pushes", v.Name)
	}
	pkh := append([]byte(nil), body[1:1+bsv20.PubKeyHashSize]...)

	var lockUntil uint64
	for i, b := range body[2+bsv20.PubKeyHashSize:] {
		lockUntil |= uint64(b) << (8 * uint(i))
	}
	return pkh, lockUntil, nil
}
