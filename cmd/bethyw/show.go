package main

import "os"

type ShowCmd struct {
	cmdWithFilters
}

func (c *ShowCmd) Run(ctx *context) error {
	areas, err := load(ctx, &c.cmdWithFilters)
	if err != nil {
		return err
	}

	areas.WriteTable(os.Stdout)
	return nil
}
