package importers

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/welshstats/bethyw/lib/filters"
	"github.com/welshstats/bethyw/lib/model"
)

var welshStatsCols = ColumnMapping{
	AuthCode:    "Localauthority_Code",
	AuthNameEng: "Localauthority_ItemName_ENG",
	MeasureCode: "Measure_Code",
	MeasureName: "Measure_ItemName_ENG",
	Year:        "Year_Code",
	Value:       "Data",
}

func TestWelshStatsJSON(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"POP","Measure_ItemName_ENG":"Population","Year_Code":"1991","Data":69123},
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"POP","Measure_ItemName_ENG":"Population","Year_Code":"1992","Data":69379}
	]}`

	areas := model.NewAreas()

	err := newTestImporter().Populate(areas, strings.NewReader(doc), WelshStatsJSON, welshStatsCols, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, areas.Size())

	area, err := areas.Area("W06000001")
	assert.NoError(t, err)

	name, err := area.Name("eng")
	assert.NoError(t, err)
	assert.Equal(t, "Isle of Anglesey", name)

	measure, err := area.Measure("pop")
	assert.NoError(t, err)
	assert.Equal(t, []int{1991, 1992}, measure.Years())

	v, err := measure.Value(1991)
	assert.NoError(t, err)
	assert.Equal(t, 69123.0, v)
}

func TestWelshStatsJSONValueAsString(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1991","Data":"69123.5"}
	]}`

	areas := model.NewAreas()

	err := newTestImporter().Populate(areas, strings.NewReader(doc), WelshStatsJSON, welshStatsCols, nil)
	assert.NoError(t, err)

	area, err := areas.Area("W06000001")
	assert.NoError(t, err)
	measure, err := area.Measure("pop")
	assert.NoError(t, err)

	v, err := measure.Value(1991)
	assert.NoError(t, err)
	assert.Equal(t, 69123.5, v)
}

func TestWelshStatsJSONSingleMeasureDataset(t *testing.T) {
	t.Parallel()

	cols := ColumnMapping{
		AuthCode:          "Area_Code",
		AuthNameEng:       "Area_ItemName_ENG",
		Year:              "Year_Code",
		Value:             "Data",
		SingleMeasureCode: "rail",
		SingleMeasureName: "Rail passenger journeys",
	}

	doc := `{"value":[
		{"Area_Code":"W06000001","Area_ItemName_ENG":"Isle of Anglesey","Year_Code":"2018","Data":12.5}
	]}`

	areas := model.NewAreas()

	err := newTestImporter().Populate(areas, strings.NewReader(doc), WelshStatsJSON, cols, nil)
	assert.NoError(t, err)

	area, err := areas.Area("W06000001")
	assert.NoError(t, err)

	measure, err := area.Measure("rail")
	assert.NoError(t, err)
	assert.Equal(t, "Rail passenger journeys", measure.Label)
}

func TestWelshStatsJSONFilters(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1991","Data":1},
		{"Localauthority_Code":"W06000002","Localauthority_ItemName_ENG":"Gwynedd",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1991","Data":2},
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"dens","Measure_ItemName_ENG":"Density","Year_Code":"1991","Data":3},
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1999","Data":4}
	]}`

	f := filters.New()
	assert.NoError(t, f.AddAreas("w06000001"))
	assert.NoError(t, f.AddMeasures("POP"))
	f.SetYearRange(1991, 1995)

	areas := model.NewAreas()

	err := newTestImporter().Populate(areas, strings.NewReader(doc), WelshStatsJSON, welshStatsCols, f)
	assert.NoError(t, err)
	assert.Equal(t, 1, areas.Size())

	area, err := areas.Area("W06000001")
	assert.NoError(t, err)
	assert.Equal(t, 1, area.Size())

	measure, err := area.Measure("pop")
	assert.NoError(t, err)
	assert.Equal(t, []int{1991}, measure.Years())
}

func TestWelshStatsJSONMissingKey(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1991","Data":1},
		{"Localauthority_Code":"W06000002","Localauthority_ItemName_ENG":"Gwynedd",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"1991"}
	]}`

	areas := model.NewAreas()

	err := newTestImporter().Populate(areas, strings.NewReader(doc), WelshStatsJSON, welshStatsCols, nil)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	// Rows committed before the malformed one remain; nothing of the
	// malformed row itself does.
	assert.Equal(t, 1, areas.Size())
	_, err = areas.Area("W06000002")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestWelshStatsJSONBadYear(t *testing.T) {
	t.Parallel()

	doc := `{"value":[
		{"Localauthority_Code":"W06000001","Localauthority_ItemName_ENG":"Isle of Anglesey",
		 "Measure_Code":"pop","Measure_ItemName_ENG":"Population","Year_Code":"19x1","Data":1}
	]}`

	err := newTestImporter().Populate(model.NewAreas(), strings.NewReader(doc), WelshStatsJSON, welshStatsCols, nil)
	assert.True(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestWelshStatsJSONBrokenDocument(t *testing.T) {
	t.Parallel()

	err := newTestImporter().Populate(model.NewAreas(), strings.NewReader("{"), WelshStatsJSON, welshStatsCols, nil)
	assert.True(t, errors.Is(err, ErrMalformedInput))
}
