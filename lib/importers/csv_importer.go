package importers

import (
	"bufio"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/model"
)

// populateFromAuthorityCodeCSV parses the authority code lookup table:
// a discarded header line, then code,english name,welsh name rows. The
// format has no quoting or escaping, so rows split on plain commas.
func (i *Importer) populateFromAuthorityCodeCSV(areas *model.Areas, r io.Reader, cols ColumnMapping, f *filters.Filters) error {
	if len(cols) != 3 {
		return errors.Wrapf(ErrUnexpectedInput, "expected 3 columns in mapping, got %v", len(cols))
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return errors.Wrap(ErrMalformedInput, "missing header line")
	}

	imported := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		fields := strings.Split(line, ",")
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
			return errors.Wrapf(ErrMalformedInput,
				"line does not have three comma separated values: %v", line)
		}

		authorityCode := fields[0]
		if !f.MatchArea(authorityCode) {
			continue
		}

		area := model.NewArea(authorityCode)
		if err := area.SetName("eng", fields[1]); err != nil {
			return err
		}
		if err := area.SetName("cym", fields[2]); err != nil {
			return err
		}

		areas.SetArea(authorityCode, area)
		imported++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading authority code CSV")
	}

	i.console.Printf("Imported %v areas\n", humanize.Comma(int64(imported)))
	return nil
}
