package datasets

import (
	"strings"

	"github.com/welshstats/bethyw/lib/importers"
)

// Dataset describes one input file: the code users select it by, where it
// lives under the data directory, how it is structured, and which headers
// or keys carry each column role.
type Dataset struct {
	Code   string
	Name   string
	File   string
	Format importers.Format
	Cols   importers.ColumnMapping
}

// Areas is the authority code lookup table. It is always loaded first so
// that datasets without name columns can rely on names imported here.
var Areas = Dataset{
	Code:   "areas",
	Name:   "Local authority codes and names",
	File:   "areas.csv",
	Format: importers.AuthorityCodeCSV,
	Cols: importers.ColumnMapping{
		importers.AuthCode:    "Local authority code",
		importers.AuthNameEng: "Name (eng)",
		importers.AuthNameCym: "Name (cym)",
	},
}

// All lists the StatsWales datasets available for import.
var All = []Dataset{
	{
		Code:   "popden",
		Name:   "Population density",
		File:   "popu1009.json",
		Format: importers.WelshStatsJSON,
		Cols: importers.ColumnMapping{
			importers.AuthCode:    "Localauthority_Code",
			importers.AuthNameEng: "Localauthority_ItemName_ENG",
			importers.MeasureCode: "Measure_Code",
			importers.MeasureName: "Measure_ItemName_ENG",
			importers.Year:        "Year_Code",
			importers.Value:       "Data",
		},
	},
	{
		Code:   "biz",
		Name:   "Active businesses",
		File:   "econ0080.json",
		Format: importers.WelshStatsJSON,
		Cols: importers.ColumnMapping{
			importers.AuthCode:    "Area_Code",
			importers.AuthNameEng: "Area_ItemName_ENG",
			importers.MeasureCode: "Variable_Code",
			importers.MeasureName: "Variable_ItemName_ENG",
			importers.Year:        "Year_Code",
			importers.Value:       "Data",
		},
	},
	{
		Code:   "aqi",
		Name:   "Air quality indicators",
		File:   "envi0201.json",
		Format: importers.WelshStatsJSON,
		Cols: importers.ColumnMapping{
			importers.AuthCode:    "Area_Code",
			importers.AuthNameEng: "Area_ItemName_ENG",
			importers.MeasureCode: "Pollutant_ItemName_ENG",
			importers.MeasureName: "Pollutant_ItemName_ENG",
			importers.Year:        "Year_Code",
			importers.Value:       "Data",
		},
	},
	{
		Code:   "trains",
		Name:   "Rail passenger journeys",
		File:   "tran0152.json",
		Format: importers.WelshStatsJSON,
		Cols: importers.ColumnMapping{
			importers.AuthCode:          "Area_Code",
			importers.AuthNameEng:       "Area_ItemName_ENG",
			importers.Year:              "Year_Code",
			importers.Value:             "Data",
			importers.SingleMeasureCode: "rail",
			importers.SingleMeasureName: "Rail passenger journeys",
		},
	},
	{
		Code:   "complete-pop",
		Name:   "Population",
		File:   "complete-popu1009-pop.csv",
		Format: importers.AuthorityByYearCSV,
		Cols: importers.ColumnMapping{
			importers.AuthCode:          "AuthorityCode",
			importers.SingleMeasureCode: "pop",
			importers.SingleMeasureName: "Population",
		},
	},
	{
		Code:   "complete-area",
		Name:   "Land area",
		File:   "complete-popu1009-area.csv",
		Format: importers.AuthorityByYearCSV,
		Cols: importers.ColumnMapping{
			importers.AuthCode:          "AuthorityCode",
			importers.SingleMeasureCode: "area",
			importers.SingleMeasureName: "Land area",
		},
	},
	{
		Code:   "complete-dens",
		Name:   "Population density",
		File:   "complete-popu1009-popden.csv",
		Format: importers.AuthorityByYearCSV,
		Cols: importers.ColumnMapping{
			importers.AuthCode:          "AuthorityCode",
			importers.SingleMeasureCode: "dens",
			importers.SingleMeasureName: "Population density",
		},
	},
}

// Find returns the dataset with the given code, case-insensitively.
func Find(code string) (Dataset, bool) {
	for _, d := range All {
		if strings.EqualFold(d.Code, code) {
			return d, true
		}
	}
	return Dataset{}, false
}
