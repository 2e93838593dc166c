package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bitcoin"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/metrics"
	"go.uber.org/zap"
)

type options struct {
	Network      model.Network `long:"network" env:"LTM_NETWORK" description:"network name" default:"mainnet"`
	Variant      string        `long:"variant" env:"LTM_VARIANT" description:"covenant variant" choice:"narrow" choice:"wide" default:"narrow"`
	WidePrefix   string        `long:"wide-prefix" env:"LTM_WIDE_PREFIX" description:"hex lock script bytes before the recipient hash (wide variant)"`
	WideSuffix   string        `long:"wide-suffix" env:"LTM_WIDE_SUFFIX" description:"hex lock script bytes after the unlock height (wide variant)"`
	CovenantCode string        `long:"covenant-code" env:"LTM_COVENANT_CODE" description:"hex compiled covenant code carried by state outputs"`
	RPCURL       string        `long:"rpc-url" env:"LTM_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser      string        `long:"rpc-user" env:"LTM_RPC_USER" description:"node RPC username"`
	RPCPassword  string        `long:"rpc-password" env:"LTM_RPC_PASSWORD" description:"node RPC password"`
}

type app struct {
	opts   options
	out    io.Writer
	logger *zap.Logger
}

func (a *app) variant() (covenant.Variant, error) {
	if a.opts.Variant != "wide" {
		return covenant.VariantByName(a.opts.Variant, nil)
	}
	if a.opts.WidePrefix == "" || a.opts.WideSuffix == "" {
		return covenant.Variant{}, errors.New("wide variant needs --wide-prefix and --wide-suffix")
	}
	prefix, err := hex.DecodeString(a.opts.WidePrefix)
	if err != nil {
		return covenant.Variant{}, fmt.Errorf("wide prefix: %w", err)
	}
	suffix, err := hex.DecodeString(a.opts.WideSuffix)
	if err != nil {
		return covenant.Variant{}, fmt.Errorf("wide suffix: %w", err)
	}
	return covenant.VariantByName("wide", &covenant.Template{Version: "custom", Prefix: prefix, Suffix: suffix})
}

func (a *app) codec() (*bsv20.Codec, error) {
	if a.opts.CovenantCode == "" {
		return nil, errors.New("--covenant-code is required")
	}
	code, err := hex.DecodeString(a.opts.CovenantCode)
	if err != nil {
		return nil, fmt.Errorf("covenant code: %w", err)
	}
	return bsv20.NewCodec(code), nil
}

func (a *app) assembler() (*covenant.Assembler, *bsv20.Codec, error) {
	variant, err := a.variant()
	if err != nil {
		return nil, nil, err
	}
	codec, err := a.codec()
	if err != nil {
		return nil, nil, err
	}
	return covenant.NewAssembler(variant, codec, codec), codec, nil
}

// withNode runs fn with an instrumented node client and closes the connection afterwards.
func (a *app) withNode(fn func(rpc *bitcoin.RPCClient) error) error {
	client, err := bitcoin.Dial(a.opts.RPCURL, a.opts.RPCUser, a.opts.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func(c *rpcclient.Client) {
		c.Shutdown()
		c.WaitForShutdown()
	}(client)
	return fn(bitcoin.NewRPCClient(client, metrics.NewRPCClient(model.BSV, a.opts.Network)))
}

func (a *app) pubKeyHash(address string) ([]byte, error) {
	return bitcoin.PubKeyHash(address, a.opts.Network)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
