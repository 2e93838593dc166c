package covenant

import (
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
)

// Reward returns lockAmount * multiplier, capped at the remaining supply.
// A product that overflows uint64 is necessarily above supply and caps as well.
func Reward(state model.TokenState, lockAmount uint64) uint64 {
	reward, err := safe.MulUint64(lockAmount, state.Multiplier)
	if err != nil || reward > state.Supply {
		return state.Supply
	}
	return reward
}
