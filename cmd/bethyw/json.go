package main

import "fmt"

type JsonCmd struct {
	cmdWithFilters
}

func (c *JsonCmd) Run(ctx *context) error {
	areas, err := load(ctx, &c.cmdWithFilters)
	if err != nil {
		return err
	}

	marshaled, err := areas.ToJSON()
	if err != nil {
		return err
	}

	fmt.Println(marshaled)
	return nil
}
