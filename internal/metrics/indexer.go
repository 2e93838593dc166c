package metrics

import (
	"time"

	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerRoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "rounds_total",
		Help:      "Count of indexer scan rounds.",
	}, []string{"lineage", "status"})
	indexerRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "round_duration_seconds",
		Help:      "Duration of an indexer scan round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"lineage", "status"})
	indexerRoundBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "round_blocks",
		Help:      "Number of blocks scanned per round.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"lineage"})

	indexerBlockFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "block_fetch_total",
		Help:      "Count of block fetches.",
	}, []string{"lineage", "status"})
	indexerBlockFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "block_fetch_duration_seconds",
		Help:      "Duration of fetching one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"lineage", "status"})

	indexerRedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "redemptions_total",
		Help:      "Count of observed covenant spends by outcome.",
	}, []string{"lineage", "status", "reason"})
	indexerRewardTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "reward_total",
		Help:      "Token units minted by valid redemptions.",
	}, []string{"lineage"})

	indexerFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_total",
		Help:      "Count of redemption batch flushes.",
	}, []string{"lineage", "status"})
	indexerFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_size",
		Help:      "Redemptions written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"lineage"})
	indexerFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of a redemption batch flush.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"lineage", "status"})

	indexerNextHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "next_height",
		Help:      "Next block height the indexer will scan.",
	}, []string{"lineage"})
	indexerSupply = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "supply",
		Help:      "Remaining supply of the tracked covenant output.",
	}, []string{"lineage"})
)

// Indexer tracks the progress of one lineage indexer.
type Indexer struct {
	lineage string
}

// NewIndexer constructs an Indexer collector labelled with the lineage id.
func NewIndexer(lineage string) *Indexer {
	return &Indexer{lineage: orUnknown(lineage)}
}

// ObserveRound records one scan round.
func (m Indexer) ObserveRound(err error, blocks int, started time.Time) {
	s := status(err)
	indexerRoundsTotal.WithLabelValues(m.lineage, s).Inc()
	indexerRoundDuration.WithLabelValues(m.lineage, s).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		indexerRoundBlocks.WithLabelValues(m.lineage).Observe(float64(blocks))
	}
}

// ObserveBlock records one block fetch.
func (m Indexer) ObserveBlock(err error, _ uint64, started time.Time) {
	s := status(err)
	indexerBlockFetchTotal.WithLabelValues(m.lineage, s).Inc()
	indexerBlockFetchDuration.WithLabelValues(m.lineage, s).Observe(time.Since(started).Seconds())
}

// ObserveRedemption counts a spend of the tracked output.
func (m Indexer) ObserveRedemption(st model.RedemptionStatus, reason string, reward uint64) {
	indexerRedemptionsTotal.WithLabelValues(m.lineage, string(st), reason).Inc()
	if st == model.RedemptionValid {
		indexerRewardTotal.WithLabelValues(m.lineage).Add(float64(reward))
	}
}

// ObserveFlush records one batch write of redemptions.
func (m Indexer) ObserveFlush(size int, err error, started time.Time) {
	s := status(err)
	indexerFlushTotal.WithLabelValues(m.lineage, s).Inc()
	indexerFlushDuration.WithLabelValues(m.lineage, s).Observe(time.Since(started).Seconds())
	indexerFlushSize.WithLabelValues(m.lineage).Observe(float64(size))
}

// SetProgress publishes the scan position and remaining supply.
func (m Indexer) SetProgress(nextHeight, supply uint64) {
	indexerNextHeight.WithLabelValues(m.lineage).Set(float64(nextHeight))
	indexerSupply.WithLabelValues(m.lineage).Set(float64(supply))
}
