package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/welshstats/bethyw/lib/datasets"
	"github.com/welshstats/bethyw/lib/filters"
)

type cmdWithFilters struct {
	Datasets []string `short:"d" help:"The dataset(s) to import as a comma-separated list of codes (omit or set to 'all' to import all datasets)."`
	Areas    []string `short:"a" help:"The area(s) to import as a comma-separated list of authority codes (omit or set to 'all' to import all areas)."`
	Measures []string `short:"m" help:"Select a subset of measures from the dataset(s) (omit or set to 'all' to import all measures)."`
	Years    string   `short:"y" help:"Focus on a particular year (YYYY) or inclusive range of years (YYYY-ZZZZ)." default:"0"`
}

func (c *cmdWithFilters) createFilters() (*filters.Filters, error) {
	f := filters.New()

	if !containsAll(c.Areas) {
		if err := f.AddAreas(c.Areas...); err != nil {
			return nil, err
		}
	}
	if !containsAll(c.Measures) {
		if err := f.AddMeasures(c.Measures...); err != nil {
			return nil, err
		}
	}

	min, max, err := filters.ParseYears(c.Years)
	if err != nil {
		return nil, err
	}
	f.SetYearRange(min, max)

	return f, nil
}

func (c *cmdWithFilters) selectDatasets() ([]datasets.Dataset, error) {
	if len(c.Datasets) == 0 || containsAll(c.Datasets) {
		return datasets.All, nil
	}

	var result []datasets.Dataset
	for _, code := range c.Datasets {
		d, ok := datasets.Find(code)
		if !ok {
			return nil, errors.Errorf("no dataset matches key: %v", code)
		}
		result = append(result, d)
	}
	return result, nil
}

func containsAll(args []string) bool {
	return lo.ContainsBy(args, func(a string) bool {
		return strings.EqualFold(a, "all")
	})
}
