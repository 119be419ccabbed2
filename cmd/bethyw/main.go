package main

import (
	"github.com/alecthomas/kong"

	"github.com/welshstats/bethyw/lib/consoles"
)

var cli struct {
	Dir string `help:"Directory for input data passed in as files." default:"datasets" type:"path"`

	Show     ShowCmd     `cmd:"" help:"Import the data and print it as tables."`
	Json     JsonCmd     `cmd:"" help:"Import the data and print it as JSON."`
	Datasets DatasetsCmd `cmd:"" help:"List the datasets available for import."`
}

type context struct {
	console consoles.Console
	dir     string
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdOutConsole(),
		dir:     cli.Dir,
	})
	ctx.FatalIfErrorf(err)
}
