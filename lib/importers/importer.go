package importers

import (
	"io"

	"github.com/pkg/errors"

	"github.com/welshstats/bethyw/lib/consoles"
	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/model"
)

// Format identifies the underlying structure of a dataset file.
type Format int

const (
	// AuthorityCodeCSV is the authority code lookup table: a header line
	// then code,english name,welsh name rows.
	AuthorityCodeCSV Format = iota + 1

	// WelshStatsJSON is a StatsWales export: an object whose "value" key
	// holds a flat list of row objects.
	WelshStatsJSON

	// AuthorityByYearCSV is a single-measure table: a header of years,
	// then one row of values per authority code.
	AuthorityByYearCSV
)

// SourceColumn names the role a column or key plays in a dataset.
type SourceColumn string

const (
	AuthCode          SourceColumn = "AUTH_CODE"
	AuthNameEng       SourceColumn = "AUTH_NAME_ENG"
	AuthNameCym       SourceColumn = "AUTH_NAME_CYM"
	MeasureCode       SourceColumn = "MEASURE_CODE"
	MeasureName       SourceColumn = "MEASURE_NAME"
	SingleMeasureCode SourceColumn = "SINGLE_MEASURE_CODE"
	SingleMeasureName SourceColumn = "SINGLE_MEASURE_NAME"
	Year              SourceColumn = "YEAR"
	Value             SourceColumn = "VALUE"
)

// ColumnMapping maps column roles to the headers or keys one dataset
// uses for them. For single-measure datasets SingleMeasureCode and
// SingleMeasureName carry the fixed codename and label directly.
type ColumnMapping map[SourceColumn]string

// Importer parses dataset streams and commits the surviving records to an
// Areas collection.
type Importer struct {
	console consoles.Console
}

func New(console consoles.Console) *Importer {
	return &Importer{
		console: console,
	}
}

// Populate dispatches on the declared format. The stream must be ready
// and the format known, otherwise nothing is parsed at all.
func (i *Importer) Populate(areas *model.Areas, r io.Reader, format Format, cols ColumnMapping, f *filters.Filters) error {
	if r == nil {
		return errors.Wrap(ErrUnexpectedInput, "input stream is not ready")
	}

	switch format {
	case AuthorityCodeCSV:
		return i.populateFromAuthorityCodeCSV(areas, r, cols, f)
	case WelshStatsJSON:
		return i.populateFromWelshStatsJSON(areas, r, cols, f)
	case AuthorityByYearCSV:
		return i.populateFromAuthorityByYearCSV(areas, r, cols, f)
	default:
		return errors.Wrapf(ErrUnexpectedInput, "unexpected data type %v", format)
	}
}
