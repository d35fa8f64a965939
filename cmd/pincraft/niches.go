package main

import (
	"fmt"

	"github.com/fwojciec/pincraft"
)

// Run executes the niches command.
func (c *NichesCmd) Run(deps *Dependencies) error {
	for _, n := range pincraft.Niches() {
		fmt.Fprintln(deps.Stdout, n)
	}
	return nil
}
