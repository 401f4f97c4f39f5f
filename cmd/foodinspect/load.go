package main

import (
	"fmt"

	"github.com/fwojciec/foodinspect"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	page, err := deps.Cache.Load(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodinspect.ErrorMessage(err))
		return err
	}

	return printListings(deps, page, c.Format)
}
