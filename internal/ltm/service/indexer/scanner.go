package indexer

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bitcoin"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
	"go.uber.org/zap"
)

// scanBlock records every spend of the tracked output in block. Transactions are in
// block order, so a successor created and spent in the same block is followed too.
func (s *Service) scanBlock(ctx context.Context, block *model.Block) error {
	for _, tx := range block.Txs {
		idx, ok := covenant.SpendingInput(tx, s.tracked.Outpoint)
		if !ok {
			continue
		}

		rd, next := s.redeem(block, tx, idx)
		if err := s.writer.WriteRedemption(ctx, rd); err != nil {
			return fmt.Errorf("write redemption %s: %w", rd.TxID, err)
		}
		s.step = rd.Step
		s.metrics.ObserveRedemption(rd.Status, rd.Reason, rd.Reward)

		logger := s.logger.With(
			zap.Uint64("step", rd.Step),
			zap.Uint64("height", rd.BlockHeight),
			zap.String("txid", rd.TxID),
		)
		if rd.Status == model.RedemptionRejected {
			logger.Warn("covenant output spent by a rejected redemption", zap.String("reason", rd.Reason))
			return ErrLineageEnded
		}
		logger.Info("redemption",
			zap.Uint64("reward", rd.Reward),
			zap.Uint64("lockAmount", rd.LockAmount),
			zap.Uint64("supply", rd.SupplyAfter),
		)
		if next == nil {
			return ErrLineageEnded
		}
		s.tracked = *next
	}
	return nil
}

// redeem evaluates the spend of the tracked output by tx and returns the record to store
// and, while supply remains, the successor covenant output.
func (s *Service) redeem(block *model.Block, tx *wire.MsgTx, inputIndex int) (model.Redemption, *model.CovenantUTXO) {
	state := s.tracked.State
	rd := model.Redemption{
		Coin:         s.cfg.Coin,
		Network:      s.cfg.Network,
		LineageID:    s.lineageID,
		Step:         s.step + 1,
		TokenID:      state.ID,
		BlockHeight:  block.Height,
		BlockTime:    block.Timestamp,
		TxID:         tx.TxHash().String(),
		InputIndex:   uint32(inputIndex),
		SpentTxID:    s.tracked.Outpoint.Hash.String(),
		SpentVout:    s.tracked.Outpoint.Index,
		LockTime:     tx.LockTime,
		Sequence:     tx.TxIn[inputIndex].Sequence,
		SupplyBefore: state.Supply,
		SupplyAfter:  state.Supply,
	}
	reject := func(err error) (model.Redemption, *model.CovenantUTXO) {
		rd.Status = model.RedemptionRejected
		rd.SupplyAfter = state.Supply
		rd.Reason = covenant.RejectReason(err)
		s.logger.Debug("redemption rejected", zap.String("txid", rd.TxID), zap.Error(err))
		return rd, nil
	}

	txCtx, err := covenant.ContextFromTx(tx, inputIndex)
	if err != nil {
		return reject(err)
	}
	r, err := s.recoverer.RecoverRedemption(tx)
	if err != nil {
		return reject(err)
	}
	rd.LockAmount = r.LockAmount
	rd.LockRecipient = s.address(r.LockRecipient)
	rd.RewardRecipient = s.address(r.RewardRecipient)

	t, err := s.validator.Validate(state, r, txCtx)
	if err != nil {
		return reject(err)
	}
	rd.Status = model.RedemptionValid
	rd.TokenID = t.Next.ID
	rd.LockUntil = t.LockUntil
	rd.Reward = t.Reward
	rd.SupplyAfter = t.Next.Supply
	if t.Depleted() {
		return rd, nil
	}

	value, err := safe.Uint64(tx.TxOut[0].Value)
	if err != nil {
		return reject(fmt.Errorf("%w: successor value: %v", covenant.ErrAmountOutOfRange, err))
	}
	return rd, &model.CovenantUTXO{
		Outpoint: wire.OutPoint{Hash: tx.TxHash(), Index: 0},
		Value:    value,
		State:    t.Next,
	}
}

// address renders a public-key hash as an address, or as hex when it cannot be encoded.
func (s *Service) address(pkh []byte) string {
	addr, err := bitcoin.Address(pkh, s.cfg.Network)
	if err != nil {
		return hex.EncodeToString(pkh)
	}
	return addr
}
