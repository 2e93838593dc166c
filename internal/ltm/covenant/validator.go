package covenant

import (
	"fmt"

	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
)

// Validator checks a redemption against the outputs hash the spending transaction commits to.
type Validator struct {
	assembler *Assembler
}

// NewValidator constructs a Validator over an Assembler.
func NewValidator(assembler *Assembler) *Validator {
	return &Validator{assembler: assembler}
}

// Validate runs every covenant rule for spending state with r under ctx and returns the
// successor state. It has no side effects; a rejected redemption leaves nothing behind.
func (v *Validator) Validate(state model.TokenState, r Redemption, ctx TxContext) (Transition, error) {
	t, err := v.assembler.transition(state, r, ctx.Outpoint, ctx.LockTime, ctx.Sequence)
	if err != nil {
		return Transition{}, err
	}
	got := txout.HashOutputs(t.Outputs)
	if got != ctx.HashOutputs {
		return Transition{}, fmt.Errorf("%w: assembled %s, committed %s", ErrOutputsCommitmentMismatch, got, ctx.HashOutputs)
	}
	return t, nil
}
