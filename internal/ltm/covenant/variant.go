package covenant

import (
	"encoding/hex"
	"fmt"
)

// Template is a versioned, immutable lock script wrapped around the dynamic
// recipient hash and unlock height.
type Template struct {
	Version string
	Prefix  []byte
	Suffix  []byte
}

// Variant selects the unlock height encoding of a covenant deployment.
type Variant struct {
	Name string
	// LockUntilWidth is the number of little-endian bytes used for the unlock height.
	LockUntilWidth int
	// HeightUpperBound is exclusive: locktime + lock duration must stay below it.
	HeightUpperBound uint64
	Template         Template
}

const (
	narrowUpperBound = 9437183
	wideUpperBound   = 500_000_000
)

// LockupTemplateV1 is the lock script shipped with the narrow variant.
var LockupTemplateV1 = Template{
	Version: "v1",
	Prefix:  mustDecodeHex(lockupV1PrefixHex),
	Suffix:  mustDecodeHex(lockupV1SuffixHex),
}

// NarrowVariant encodes the unlock height in 3 bytes and bounds it at 9437183.
var NarrowVariant = Variant{
	Name:             "narrow",
	LockUntilWidth:   3,
	HeightUpperBound: narrowUpperBound,
	Template:         LockupTemplateV1,
}

// NewWideVariant returns the 6-byte variant, bounded by the height/timestamp threshold.
// Its lock script is compiled separately and has to be supplied.
func NewWideVariant(template Template) Variant {
	return Variant{
		Name:             "wide",
		LockUntilWidth:   6,
		HeightUpperBound: wideUpperBound,
		Template:         template,
	}
}

// VariantByName resolves a variant from configuration.
func VariantByName(name string, wideTemplate *Template) (Variant, error) {
	switch name {
	case "", NarrowVariant.Name:
		return NarrowVariant, nil
	case "wide":
		if wideTemplate == nil {
			return Variant{}, fmt.Errorf("wide variant requires a lock script template")
		}
		return NewWideVariant(*wideTemplate), nil
	default:
		return Variant{}, fmt.Errorf("unknown covenant variant %q", name)
	}
}

func (v Variant) maxLockUntil() uint64 {
	return 1<<(8*uint(v.LockUntilWidth)) - 1
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("covenant: bad template hex: %v", err))
	}
	return b
}
