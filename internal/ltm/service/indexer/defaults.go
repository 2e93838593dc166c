package indexer

import (
	"time"

	"github.com/goodnatureofminers/lockmint/internal/clock"
)

const (
	defaultWorkerCount           = 8
	defaultBlocksPerRound uint64 = 100

	idleSleepDuration = 10 * time.Second

	redemptionBatcherCapacity      = 500
	redemptionBatcherFlushInterval = 2 * time.Second
	redemptionBatcherRPS           = 10
)

var retryBackoff = clock.Backoff{Initial: time.Second, Max: 2 * time.Minute}
