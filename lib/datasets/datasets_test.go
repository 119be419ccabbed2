package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/welshstats/bethyw/lib/importers"
)

func TestFindIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	d, ok := Find("POPDEN")
	assert.True(t, ok)
	assert.Equal(t, "popden", d.Code)

	_, ok = Find("nope")
	assert.False(t, ok)
}

func TestDescriptorsAreWellFormed(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, d := range append([]Dataset{Areas}, All...) {
		assert.NotEmpty(t, d.Code)
		assert.NotEmpty(t, d.File)
		assert.False(t, seen[d.Code], "duplicate code %v", d.Code)
		seen[d.Code] = true

		switch d.Format {
		case importers.AuthorityCodeCSV, importers.AuthorityByYearCSV:
			assert.Len(t, d.Cols, 3, "dataset %v", d.Code)
		case importers.WelshStatsJSON:
			assert.Contains(t, d.Cols, importers.AuthCode, "dataset %v", d.Code)
			assert.Contains(t, d.Cols, importers.Year, "dataset %v", d.Code)
			assert.Contains(t, d.Cols, importers.Value, "dataset %v", d.Code)
		default:
			t.Errorf("dataset %v has unknown format %v", d.Code, d.Format)
		}
	}
}
