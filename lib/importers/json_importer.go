package importers

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/model"
)

// populateFromWelshStatsJSON parses a StatsWales export: a top-level
// "value" list of flat row objects, with the mapping naming which key
// carries each role. Filters apply per row, area then measure then year,
// short-circuiting so keys of filtered-out rows are never read. Each
// surviving row becomes a fresh one-value Area/Measure pair committed via
// SetArea, relying on the collection's merge-on-conflict policy.
func (i *Importer) populateFromWelshStatsJSON(areas *model.Areas, r io.Reader, cols ColumnMapping, f *filters.Filters) error {
	var doc struct {
		Value []map[string]any `json:"value"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return errors.Wrapf(ErrMalformedInput, "decoding JSON: %v", err)
	}

	// Datasets describing exactly one measure carry its codename and
	// label in the mapping instead of in every row.
	_, single := cols[SingleMeasureCode]

	imported := 0
	for _, row := range doc.Value {
		authorityCode, err := stringField(row, cols, AuthCode)
		if err != nil {
			return err
		}
		if !f.MatchArea(authorityCode) {
			continue
		}

		var measureCode, measureLabel string
		if single {
			measureCode = cols[SingleMeasureCode]
			measureLabel = cols[SingleMeasureName]
		} else {
			measureCode, err = stringField(row, cols, MeasureCode)
			if err != nil {
				return err
			}
			measureLabel, err = stringField(row, cols, MeasureName)
			if err != nil {
				return err
			}
		}
		if !f.MatchMeasure(measureCode) {
			continue
		}

		yearText, err := stringField(row, cols, Year)
		if err != nil {
			return err
		}
		year, err := parseYear(yearText)
		if err != nil {
			return err
		}
		if !f.MatchYear(year) {
			continue
		}

		englishName, err := stringField(row, cols, AuthNameEng)
		if err != nil {
			return err
		}
		value, err := numberField(row, cols, Value)
		if err != nil {
			return err
		}

		area := model.NewArea(authorityCode)
		if err := area.SetName("eng", englishName); err != nil {
			return err
		}
		measure := model.NewMeasure(measureCode, measureLabel)
		measure.SetValue(year, value)
		area.SetMeasure(measureCode, measure)

		areas.SetArea(authorityCode, area)
		imported++
	}

	i.console.Printf("Imported %v records\n", humanize.Comma(int64(imported)))
	return nil
}

func field(row map[string]any, cols ColumnMapping, col SourceColumn) (any, error) {
	key, ok := cols[col]
	if !ok {
		return nil, errors.Wrapf(ErrUnexpectedInput, "column %v missing from mapping", col)
	}

	v, ok := row[key]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedInput, "row is missing key %v", key)
	}
	return v, nil
}

func stringField(row map[string]any, cols ColumnMapping, col SourceColumn) (string, error) {
	v, err := field(row, cols, col)
	if err != nil {
		return "", err
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		// Some exports store years as JSON numbers.
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", errors.Wrapf(ErrMalformedInput, "key %v has unexpected type %T", cols[col], v)
	}
}

func numberField(row map[string]any, cols ColumnMapping, col SourceColumn) (float64, error) {
	v, err := field(row, cols, col)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		// Some exports quote their numeric values.
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errors.Wrapf(ErrParse, "invalid numeric value %q", n)
		}
		return parsed, nil
	default:
		return 0, errors.Wrapf(ErrMalformedInput, "key %v has unexpected type %T", cols[col], v)
	}
}

func parseYear(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.Wrapf(ErrParse, "invalid year %q", text)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrParse, "invalid year %q", text)
		}
	}

	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "invalid year %q", text)
	}
	return year, nil
}
