package main

import (
	"fmt"

	"github.com/fwojciec/foodinspect"
	"github.com/fwojciec/foodinspect/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	page, err := fetchPage(deps, c.Query())
	if err != nil {
		return err
	}

	if c.Save != "" {
		if err := deps.Cache.Save(deps.Ctx, c.Save, page); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", c.Save, err)
			return err
		}
	}

	return printListings(deps, page, c.Format)
}

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	q := c.Query()

	page, err := fetchPage(deps, q)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = fs.KeyForQuery(q)
	}

	if err := deps.Cache.Save(deps.Ctx, name, page); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", name, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", name, len(page.Body))
	return nil
}

func fetchPage(deps *Dependencies, q foodinspect.Query) (*foodinspect.Page, error) {
	if err := q.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", foodinspect.ErrorMessage(err))
		return nil, err
	}

	page, err := deps.Source.Fetch(deps.Ctx, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return nil, err
	}

	return page, nil
}
