package main

import (
	"fmt"

	"github.com/welshstats/bethyw/lib/datasets"
)

type DatasetsCmd struct{}

func (c *DatasetsCmd) Run(ctx *context) error {
	for _, d := range datasets.All {
		fmt.Printf("%-15v %v (%v)\n", d.Code, d.Name, d.File)
	}
	return nil
}
