package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/foodinspect"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Source    foodinspect.Source
	Cache     foodinspect.PageCache
	Extractor foodinspect.ListingExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Log fetch, cache and extract steps"`
	CacheDir    string        `name:"cache-dir" env:"FOODINSPECT_CACHE_DIR" default:"." help:"Directory for saved results pages"`
	BaseURL     string        `name:"base-url" env:"FOODINSPECT_BASE_URL" default:"http://info.kingcounty.gov" help:"Inspection results host"`
	Timeout     time.Duration `short:"t" env:"FOODINSPECT_TIMEOUT" default:"30s" help:"HTTP request timeout"`
	Concurrency int           `short:"c" env:"FOODINSPECT_CONCURRENCY" default:"1" help:"Listings extracted in parallel"`

	Fetch FetchCmd `cmd:"" help:"Fetch inspection results and print listings"`
	Load  LoadCmd  `cmd:"" help:"Print listings from a saved results page"`
	Save  SaveCmd  `cmd:"" help:"Fetch inspection results and save the raw page"`
}

// QueryFlags are the search filters shared by commands that fetch.
// Empty flags keep the endpoint defaults (all Seattle records, all types).
type QueryFlags struct {
	Business string `help:"Business name"`
	Address  string `help:"Business address"`
	City     string `help:"City (endpoint default: Seattle)"`
	Zip      string `help:"Zip code"`
	Start    string `help:"Inspection start date (M/D/YYYY)"`
	End      string `help:"Inspection end date (M/D/YYYY)"`
	Type     string `help:"Inspection type (endpoint default: All)"`
}

// Query returns the default query with the non-empty flags applied.
func (f QueryFlags) Query() foodinspect.Query {
	overrides := make(map[string]string)
	for key, val := range map[string]string{
		foodinspect.ParamBusinessName:    f.Business,
		foodinspect.ParamBusinessAddress: f.Address,
		foodinspect.ParamCity:            f.City,
		foodinspect.ParamZipCode:         f.Zip,
		foodinspect.ParamInspectionStart: f.Start,
		foodinspect.ParamInspectionEnd:   f.End,
		foodinspect.ParamInspectionType:  f.Type,
	} {
		if val != "" {
			overrides[key] = val
		}
	}
	return foodinspect.DefaultQuery().With(overrides)
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	QueryFlags `embed:""`

	Format string `short:"f" enum:"text,json,table" default:"text" help:"Output format (text, json, table)"`
	Save   string `help:"Also save the raw page under this name in the cache directory"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Name   string `arg:"" help:"Name of the saved page"`
	Format string `short:"f" enum:"text,json,table" default:"text" help:"Output format (text, json, table)"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	QueryFlags `embed:""`

	Name string `arg:"" optional:"" help:"Name to save under (default: derived from the query)"`
}
