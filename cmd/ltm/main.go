// Command ltm deploys, builds and checks lock-to-mint covenant transactions.
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{out: os.Stdout, logger: logger}
	parser := newParser(a)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("ltm failed", zap.Error(err))
	}
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	mustAddCommand(parser, "genesis", "Render the genesis covenant output",
		"Encodes the deploy+mint state-carry output that starts a lineage.", &genesisCommand{app: a})
	mustAddCommand(parser, "lockscript", "Render a lock script",
		"Builds the time-lock script paying to an address once the unlock height is reached.", &lockScriptCommand{app: a})
	mustAddCommand(parser, "build", "Build a redemption transaction",
		"Reads the current covenant output from the node and builds the unsigned redemption spending it.", &buildCommand{app: a})
	mustAddCommand(parser, "validate", "Validate a redemption transaction",
		"Checks a spend of a covenant output against the covenant rules.", &validateCommand{app: a})
	return parser
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic("register command " + name + ": " + err.Error())
	}
}
