package main

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
	"go.uber.org/zap"
)

type genesisCommand struct {
	Symbol       string `long:"symbol" description:"token ticker" required:"true"`
	Max          uint64 `long:"max" description:"total supply in token units" required:"true"`
	Decimals     uint8  `long:"decimals" description:"display decimals"`
	Multiplier   uint64 `long:"multiplier" description:"token units rewarded per locked satoshi" default:"1"`
	LockDuration uint64 `long:"lock-duration" description:"blocks a lock output stays locked" required:"true"`
	StartHeight  uint32 `long:"start-height" description:"first block height accepted as locktime" required:"true"`

	app *app
}

type genesisResult struct {
	Symbol       string `json:"symbol"`
	Max          uint64 `json:"max"`
	Decimals     uint8  `json:"decimals"`
	Multiplier   uint64 `json:"multiplier"`
	LockDuration uint64 `json:"lockDuration"`
	StartHeight  uint32 `json:"startHeight"`
	Script       string `json:"script"`
	Output       string `json:"output"`
}

func (c *genesisCommand) Execute(_ []string) error {
	codec, err := c.app.codec()
	if err != nil {
		return err
	}
	state, err := covenant.Genesis(model.Deployment{
		Symbol:       c.Symbol,
		Max:          c.Max,
		Decimals:     c.Decimals,
		Multiplier:   c.Multiplier,
		LockDuration: c.LockDuration,
		StartHeight:  c.StartHeight,
	})
	if err != nil {
		return err
	}
	script, err := codec.EncodeState(state)
	if err != nil {
		return fmt.Errorf("encode genesis state: %w", err)
	}
	output, err := txout.Wrap(script, bsv20.TokenOutputValue)
	if err != nil {
		return err
	}

	c.app.logger.Debug("genesis state encoded", zap.String("symbol", c.Symbol), zap.Uint64("max", c.Max))
	return c.app.print(genesisResult{
		Symbol:       state.Symbol,
		Max:          state.Max,
		Decimals:     state.Decimals,
		Multiplier:   state.Multiplier,
		LockDuration: state.LockDuration,
		StartHeight:  state.LastHeight,
		Script:       hex.EncodeToString(script),
		Output:       hex.EncodeToString(output),
	})
}
