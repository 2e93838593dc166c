package main

import (
	"encoding/hex"
)

type lockScriptCommand struct {
	Address   string `long:"address" description:"address the locked coins unlock to" required:"true"`
	LockUntil uint64 `long:"lock-until" description:"unlock block height" required:"true"`
	Amount    uint64 `long:"amount" description:"satoshis to lock; also renders the output when set"`

	app *app
}

type lockScriptResult struct {
	Variant   string `json:"variant"`
	Template  string `json:"template"`
	LockUntil uint64 `json:"lockUntil"`
	Script    string `json:"script"`
	Output    string `json:"output,omitempty"`
}

func (c *lockScriptCommand) Execute(_ []string) error {
	variant, err := c.app.variant()
	if err != nil {
		return err
	}
	pkh, err := c.app.pubKeyHash(c.Address)
	if err != nil {
		return err
	}
	script, err := variant.LockScript(pkh, c.LockUntil)
	if err != nil {
		return err
	}

	res := lockScriptResult{
		Variant:   variant.Name,
		Template:  variant.Template.Version,
		LockUntil: c.LockUntil,
		Script:    hex.EncodeToString(script),
	}
	if c.Amount > 0 {
		output, err := variant.BuildLockOutput(pkh, c.Amount, c.LockUntil)
		if err != nil {
			return err
		}
		res.Output = hex.EncodeToString(output)
	}
	return c.app.print(res)
}
