package covenant

import "errors"

// Redemption rejections. Each one names the covenant rule the candidate transaction broke.
var (
	ErrStaleLocktime             = errors.New("locktime precedes the lineage height watermark")
	ErrLockDurationOverflow      = errors.New("lock until height exceeds the variant bound")
	ErrSequenceDisablesLocktime  = errors.New("input sequence disables locktime enforcement")
	ErrSupplyExhausted           = errors.New("token supply exhausted")
	ErrOutputsCommitmentMismatch = errors.New("outputs do not match the committed hash")
	ErrMalformedRecipientHash    = errors.New("recipient hash must be 20 bytes")
	ErrEncodingWidthExceeded     = errors.New("value does not fit the encoding width")
	ErrStartHeightTooHigh        = errors.New("start height must be a block height")
	ErrInvalidDeployment         = errors.New("invalid deployment")
	ErrAmountOutOfRange          = errors.New("amount out of range")
	ErrNotCovenantSpend          = errors.New("transaction does not spend a covenant output")
)

var reasons = []struct {
	err  error
	code string
}{
	{ErrStaleLocktime, "stale_locktime"},
	{ErrLockDurationOverflow, "lock_duration_overflow"},
	{ErrSequenceDisablesLocktime, "sequence_disables_locktime"},
	{ErrSupplyExhausted, "supply_exhausted"},
	{ErrOutputsCommitmentMismatch, "outputs_commitment_mismatch"},
	{ErrMalformedRecipientHash, "malformed_recipient_hash"},
	{ErrEncodingWidthExceeded, "encoding_width_exceeded"},
	{ErrAmountOutOfRange, "amount_out_of_range"},
	{ErrNotCovenantSpend, "not_covenant_spend"},
}

// RejectReason maps a rejection to a short stable code for storage and metric labels.
func RejectReason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}
	return "other"
}
