package main

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/welshstats/bethyw/lib/datasets"
	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/importers"
	"github.com/welshstats/bethyw/lib/input"
	"github.com/welshstats/bethyw/lib/model"
	"github.com/welshstats/bethyw/lib/utils"
)

// load imports the authority code table and then every selected dataset,
// applying the command's filters, and returns the populated collection.
func load(ctx *context, c *cmdWithFilters) (*model.Areas, error) {
	f, err := c.createFilters()
	if err != nil {
		return nil, err
	}

	selected, err := c.selectDatasets()
	if err != nil {
		return nil, err
	}

	queue := append([]datasets.Dataset{datasets.Areas}, selected...)

	areas := model.NewAreas()
	importer := importers.New(ctx.console)

	bar := utils.NewProgressBar(len(queue))
	for _, d := range queue {
		bar.Describe(utils.TruncateFilename(d.File))

		err = loadDataset(importer, areas, ctx.dir, d, f)
		if err != nil {
			return nil, err
		}

		_ = bar.Add(1)
	}

	ctx.console.Printf("Loaded %v areas\n", humanize.Comma(int64(areas.Size())))
	return areas, nil
}

func loadDataset(importer *importers.Importer, areas *model.Areas, dir string, d datasets.Dataset, f *filters.Filters) error {
	source := input.NewFile(filepath.Join(dir, d.File))

	stream, err := source.Open()
	if err != nil {
		return err
	}
	defer stream.Close()

	err = importer.Populate(areas, stream, d.Format, d.Cols, f)
	return errors.Wrapf(err, "importing %v", d.Code)
}
