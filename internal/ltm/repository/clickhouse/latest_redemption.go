package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

const latestRedemptionQuery = `
SELECT
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
FROM ltm_redemptions FINAL
WHERE coin = ? AND network = ? AND lineage_id = ?
ORDER BY step DESC
LIMIT 1`

// LatestRedemption returns the last stored redemption of a lineage.
// The boolean is false when the lineage has no redemptions yet.
func (r *Repository) LatestRedemption(ctx context.Context, coin model.Coin, network model.Network, lineageID string) (rd model.Redemption, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_redemption", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, latestRedemptionQuery, string(coin), string(network), lineageID)
	if err != nil {
		return model.Redemption{}, false, fmt.Errorf("query latest redemption: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Redemption{}, false, fmt.Errorf("iterate latest redemption: %w", err)
		}
		return model.Redemption{}, false, nil
	}

	var coinCol, networkCol, status string
	if err = rows.Scan(
		&coinCol,
		&networkCol,
		&rd.LineageID,
		&rd.Step,
		&rd.TokenID,
		&rd.BlockHeight,
		&rd.BlockTime,
		&rd.TxID,
		&rd.InputIndex,
		&rd.SpentTxID,
		&rd.SpentVout,
		&rd.LockTime,
		&rd.Sequence,
		&rd.LockUntil,
		&rd.LockAmount,
		&rd.LockRecipient,
		&rd.RewardRecipient,
		&rd.Reward,
		&rd.SupplyBefore,
		&rd.SupplyAfter,
		&status,
		&rd.Reason,
	); err != nil {
		return model.Redemption{}, false, fmt.Errorf("scan latest redemption: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Redemption{}, false, fmt.Errorf("iterate latest redemption: %w", err)
	}

	rd.Coin = model.Coin(coinCol)
	rd.Network = model.Network(networkCol)
	rd.Status = model.RedemptionStatus(status)
	return rd, true, nil
}
