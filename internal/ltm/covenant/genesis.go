package covenant

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

// heightThreshold separates block heights from timestamps in locktime fields.
const heightThreshold uint32 = txscript.LockTimeThreshold

// Genesis returns the first state of a lineage: full supply, unbound id.
func Genesis(d model.Deployment) (model.TokenState, error) {
	if d.StartHeight >= heightThreshold {
		return model.TokenState{}, fmt.Errorf("%w: %d >= %d", ErrStartHeightTooHigh, d.StartHeight, heightThreshold)
	}
	if d.Max == 0 {
		return model.TokenState{}, fmt.Errorf("%w: max supply must be positive", ErrInvalidDeployment)
	}
	if d.Symbol == "" {
		return model.TokenState{}, fmt.Errorf("%w: symbol is required", ErrInvalidDeployment)
	}

	return model.TokenState{
		FungibleTokenState: model.FungibleTokenState{
			Symbol:   d.Symbol,
			Max:      d.Max,
			Decimals: d.Decimals,
			Supply:   d.Max,
		},
		LockDuration: d.LockDuration,
		Multiplier:   d.Multiplier,
		LastHeight:   d.StartHeight,
	}, nil
}

// TokenID derives the token id from the genesis output being spent:
// the display (byte-reversed) txid, an underscore and the decimal output index.
func TokenID(genesis wire.OutPoint) string {
	return genesis.Hash.String() + "_" + strconv.FormatUint(uint64(genesis.Index), 10)
}
