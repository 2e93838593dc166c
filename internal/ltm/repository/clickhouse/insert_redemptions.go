package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

const insertRedemptionsQuery = `
INSERT INTO ltm_redemptions (
	coin,
	network,
	lineage_id,
	step,
	token_id,
	block_height,
	block_time,
	txid,
	input_index,
	spent_txid,
	spent_vout,
	lock_time,
	sequence,
	lock_until,
	lock_amount,
	lock_recipient,
	reward_recipient,
	reward,
	supply_before,
	supply_after,
	status,
	reason
) VALUES`

// InsertRedemptions stores redemption rows in ClickHouse.
func (r *Repository) InsertRedemptions(ctx context.Context, redemptions []model.Redemption) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_redemptions", firstCoin(redemptions), firstNetwork(redemptions), err, start)
	}()

	if len(redemptions) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRedemptionsQuery)
	if err != nil {
		return fmt.Errorf("prepare redemptions batch: %w", err)
	}

	for _, rd := range redemptions {
		if err = batch.Append(redemptionRow(rd)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append redemption %s: %w", rd.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert redemptions: %w", err)
	}
	return nil
}

func redemptionRow(rd model.Redemption) []any {
	return []any{
		string(rd.Coin),
		string(rd.Network),
		rd.LineageID,
		rd.Step,
		rd.TokenID,
		rd.BlockHeight,
		rd.BlockTime,
		rd.TxID,
		rd.InputIndex,
		rd.SpentTxID,
		rd.SpentVout,
		rd.LockTime,
		rd.Sequence,
		rd.LockUntil,
		rd.LockAmount,
		rd.LockRecipient,
		rd.RewardRecipient,
		rd.Reward,
		rd.SupplyBefore,
		rd.SupplyAfter,
		string(rd.Status),
		rd.Reason,
	}
}

func firstCoin(items []model.Redemption) model.Coin {
	if len(items) == 0 {
		return ""
	}
	return items[0].Coin
}

func firstNetwork(items []model.Redemption) model.Network {
	if len(items) == 0 {
		return ""
	}
	return items[0].Network
}
