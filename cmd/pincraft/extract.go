package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pincraft"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	req := pincraft.Request{URL: strings.TrimSpace(c.URL)}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pincraft.ErrorMessage(err))
		return err
	}

	content := deps.Scraper.Scrape(deps.Ctx, req.URL)
	if err := deps.Ctx.Err(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(content)
}
