package model

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/welshstats/bethyw/lib/utils"
)

// Measure is a single named statistical series for an area, e.g.
// population, with one reading per year. The codename is lowercased on
// construction and never changes afterwards.
type Measure struct {
	code   string
	Label  string
	values map[int]float64
}

func NewMeasure(code, label string) *Measure {
	return &Measure{
		code:   strings.ToLower(code),
		Label:  label,
		values: map[int]float64{},
	}
}

func (m *Measure) Code() string {
	return m.code
}

func (m *Measure) Value(year int) (float64, error) {
	v, ok := m.values[year]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "no value found for year %v", year)
	}
	return v, nil
}

// SetValue inserts or replaces the reading for a year.
func (m *Measure) SetValue(year int, value float64) {
	m.values[year] = value
}

func (m *Measure) Size() int {
	return len(m.values)
}

func (m *Measure) Years() []int {
	result := lo.Keys(m.values)
	sort.Ints(result)
	return result
}

// Difference is the change in value from the first to the last year, or 0
// if there is no data.
func (m *Measure) Difference() float64 {
	if len(m.values) == 0 {
		return 0
	}

	years := m.Years()
	return m.values[years[len(years)-1]] - m.values[years[0]]
}

// DifferenceAsPercentage is Difference relative to the first year's value.
// A first value of 0 yields IEEE-754 infinity or NaN; that is left to the
// caller to interpret.
func (m *Measure) DifferenceAsPercentage() float64 {
	if len(m.values) == 0 {
		return 0
	}

	first := m.values[m.Years()[0]]
	return m.Difference() / first * 100
}

func (m *Measure) Average() float64 {
	if len(m.values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range m.values {
		sum += v
	}
	return sum / float64(len(m.values))
}

// Merge upserts every reading of other into this measure. Other's values
// win on a year collision; years only this measure has are preserved.
func (m *Measure) Merge(other *Measure) {
	for year, value := range other.values {
		m.values[year] = value
	}
}

func (m *Measure) Clone() *Measure {
	result := NewMeasure(m.code, m.Label)
	for year, value := range m.values {
		result.values[year] = value
	}
	return result
}

func (m *Measure) Equal(other *Measure) bool {
	if m.code != other.code || m.Label != other.Label || len(m.values) != len(other.values) {
		return false
	}
	for year, value := range m.values {
		otherValue, ok := other.values[year]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// columnWidth is the width shared by every column of this measure's table
// block, taken from the widest stored value.
func (m *Measure) columnWidth() int {
	width := valueWidth(0)
	for _, v := range m.values {
		width = utils.Max(width, valueWidth(v))
	}
	return width
}

// WriteTable renders the measure as a fixed-width block: a label+code
// header, a row of right-aligned years plus the derived column headings,
// and a row of the values at six decimal places plus the derived values.
func (m *Measure) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "%v (%v) \n", m.Label, m.code)

	width := m.columnWidth()
	years := m.Years()

	for _, year := range years {
		fmt.Fprintf(w, "%*d ", width, year)
	}
	fmt.Fprintf(w, "%*v %*v %*v \n", width, "Average", width, "Diff.", width, "% Diff.")

	for _, year := range years {
		fmt.Fprintf(w, "%*.6f ", width, m.values[year])
	}
	fmt.Fprintf(w, "%*.6f %*.6f %*.6f \n",
		width, m.Average(), width, m.Difference(), width, m.DifferenceAsPercentage())
}

func (m *Measure) String() string {
	sb := strings.Builder{}
	m.WriteTable(&sb)
	return sb.String()
}
