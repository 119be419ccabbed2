package importers

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/model"
)

// populateFromAuthorityByYearCSV parses a single-measure table: the
// header lists 4 digit years after the code column, each following row an
// authority code and one value per year. The whole file describes the one
// measure named in the mapping, so a measure filter miss skips the file
// entirely. A cell that is present but not a number (including an empty
// cell) is skipped; a missing cell is malformed input.
func (i *Importer) populateFromAuthorityByYearCSV(areas *model.Areas, r io.Reader, cols ColumnMapping, f *filters.Filters) error {
	if len(cols) != 3 {
		return errors.Wrapf(ErrUnexpectedInput, "expected 3 columns in mapping, got %v", len(cols))
	}

	measureCode, ok := cols[SingleMeasureCode]
	if !ok {
		return errors.Wrapf(ErrUnexpectedInput, "column %v missing from mapping", SingleMeasureCode)
	}
	measureLabel := cols[SingleMeasureName]

	if !f.MatchMeasure(measureCode) {
		return nil
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return errors.Wrap(ErrMalformedInput, "missing header line")
	}

	header := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), ",")
	years := make([]int, 0, len(header)-1)
	for _, cell := range header[1:] {
		year, err := parseYear(cell)
		if err != nil || year < 1000 || year > 9999 {
			return errors.Wrapf(ErrParse, "header year is not a 4 digit number: %q", cell)
		}
		years = append(years, year)
	}

	imported := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		fields := strings.Split(line, ",")
		if len(fields) != len(years)+1 || fields[0] == "" {
			return errors.Wrapf(ErrMalformedInput,
				"line does not have an authority code and %v values: %v", len(years), line)
		}

		authorityCode := fields[0]
		if !f.MatchArea(authorityCode) {
			continue
		}

		area := model.NewArea(authorityCode)
		measure := model.NewMeasure(measureCode, measureLabel)
		for idx, year := range years {
			if !f.MatchYear(year) {
				continue
			}

			value, err := strconv.ParseFloat(strings.TrimSpace(fields[idx+1]), 64)
			if err != nil {
				// No reading for this area and year.
				continue
			}
			measure.SetValue(year, value)
		}
		area.SetMeasure(measureCode, measure)

		areas.SetArea(authorityCode, area)
		imported++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading year columns CSV")
	}

	i.console.Printf("Imported %v rows of %v\n", humanize.Comma(int64(imported)), measureCode)
	return nil
}
