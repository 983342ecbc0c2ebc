package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/clipvault"
)

// Run executes the config encode command.
func (c *ConfigEncodeCmd) Run(deps *Dependencies) error {
	if err := deps.Config.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, clipvault.EncodeConfig(deps.Config).Encode())
	return nil
}

// Run executes the config decode command.
func (c *ConfigDecodeCmd) Run(deps *Dependencies) error {
	raw := c.Params
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	}

	params, err := url.ParseQuery(raw)
	if err != nil {
		err = clipvault.Errorf(clipvault.EINVALID, "invalid parameters: %v", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
		return err
	}

	cfg := clipvault.DecodeConfig(params)
	if cfg.Props == nil {
		cfg.Props = []clipvault.Prop{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
