package covenant

import (
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
)

// Assembler builds the ordered outputs of a redemption.
type Assembler struct {
	variant   Variant
	states    StateCodec
	transfers TransferCodec
}

// NewAssembler constructs an Assembler for a covenant variant and its codecs.
func NewAssembler(variant Variant, states StateCodec, transfers TransferCodec) *Assembler {
	return &Assembler{variant: variant, states: states, transfers: transfers}
}

// Variant returns the variant the assembler encodes lock outputs for.
func (a *Assembler) Variant() Variant {
	return a.variant
}

// Assemble returns, in order: the state-carry output (only while next.Supply > 0),
// the lock output, the reward output and the trailing outputs.
func (a *Assembler) Assemble(next model.TokenState, r Redemption, reward, lockUntil uint64) ([][]byte, error) {
	if len(r.RewardRecipient) != bsv20.PubKeyHashSize {
		return nil, fmt.Errorf("%w: reward recipient has %d bytes", ErrMalformedRecipientHash, len(r.RewardRecipient))
	}

	outputs := make([][]byte, 0, 3+len(r.Trailing))
	if next.Supply > 0 {
		script, err := a.states.EncodeState(next)
		if err != nil {
			return nil, fmt.Errorf("encode state output: %w", err)
		}
		stateOut, err := txout.Wrap(script, bsv20.TokenOutputValue)
		if err != nil {
			return nil, fmt.Errorf("wrap state output: %w", err)
		}
		outputs = append(outputs, stateOut)
	}

	lockOut, err := a.variant.BuildLockOutput(r.LockRecipient, r.LockAmount, lockUntil)
	if err != nil {
		return nil, fmt.Errorf("build lock output: %w", err)
	}
	outputs = append(outputs, lockOut)

	rewardOut, err := a.transfers.EncodeTransfer(r.RewardRecipient, next.ID, reward)
	if err != nil {
		return nil, fmt.Errorf("encode reward output: %w", err)
	}
	outputs = append(outputs, rewardOut)

	for _, t := range r.Trailing {
		outputs = append(outputs, append([]byte(nil), t...))
	}
	return outputs, nil
}

// transition applies the covenant rules shared by the validator and the builder.
// The returned Transition carries assembled outputs but no hash check has happened yet.
func (a *Assembler) transition(state model.TokenState, r Redemption, spent wire.OutPoint, lockTime, sequence uint32) (Transition, error) {
	if state.Phase() == model.PhaseDepleted {
		return Transition{}, ErrSupplyExhausted
	}
	if lockTime < state.LastHeight {
		return Transition{}, fmt.Errorf("%w: locktime %d, last height %d", ErrStaleLocktime, lockTime, state.LastHeight)
	}
	lockUntil, err := safe.AddUint64(uint64(lockTime), state.LockDuration)
	if err != nil || lockUntil >= a.variant.HeightUpperBound {
		return Transition{}, fmt.Errorf("%w: %d + %d must be below %d",
			ErrLockDurationOverflow, lockTime, state.LockDuration, a.variant.HeightUpperBound)
	}
	if sequence >= wire.MaxTxInSequenceNum {
		return Transition{}, fmt.Errorf("%w: sequence %#x", ErrSequenceDisablesLocktime, sequence)
	}

	reward := Reward(state, r.LockAmount)
	next := state
	next.Supply = state.Supply - reward
	next.LastHeight = lockTime
	if state.IsGenesis() {
		next.ID = TokenID(spent)
	}

	outputs, err := a.Assemble(next, r, reward, lockUntil)
	if err != nil {
		return Transition{}, err
	}
	return Transition{
		Previous:  state,
		Next:      next,
		Reward:    reward,
		LockUntil: lockUntil,
		Outputs:   outputs,
	}, nil
}
