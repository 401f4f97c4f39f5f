package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/foodinspect"
	"github.com/fwojciec/foodinspect/gopretty"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

// printListings extracts the listings of page and writes them to stdout.
func printListings(deps *Dependencies, page *foodinspect.Page, format string) error {
	listings, err := deps.Extractor.Extract(page.Body, page.Encoding)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %v\n", err)
		return err
	}

	return writeListings(deps.Stdout, format, listings)
}

func writeListings(w io.Writer, format string, listings []*foodinspect.Listing) error {
	switch format {
	case formatJSON:
		if listings == nil {
			listings = []*foodinspect.Listing{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	case formatTable:
		_, err := fmt.Fprintln(w, gopretty.RenderTable(listings))
		return err
	case formatText, "":
		if len(listings) == 0 {
			_, err := fmt.Fprintln(w, "No listings found.")
			return err
		}
		_, err := fmt.Fprintln(w, foodinspect.FormatListings(listings))
		return err
	default:
		return foodinspect.Errorf(foodinspect.EINVALID, "unknown output format %q", format)
	}
}
