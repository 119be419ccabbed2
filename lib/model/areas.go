package model

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Areas is the collection of every imported area, keyed by local
// authority code. Population is monotonic: set and merge, never delete.
type Areas struct {
	areas map[string]*Area
}

func NewAreas() *Areas {
	return &Areas{
		areas: map[string]*Area{},
	}
}

// SetArea inserts the area under its code, or merges it into the area
// already stored there, the incoming data taking precedence on conflicts.
func (as *Areas) SetArea(code string, area *Area) {
	if existing, ok := as.areas[code]; ok {
		existing.Merge(area)
	} else {
		as.areas[code] = area
	}
}

func (as *Areas) Area(code string) (*Area, error) {
	area, ok := as.areas[code]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no area found matching %v", code)
	}
	return area, nil
}

func (as *Areas) Size() int {
	return len(as.areas)
}

func (as *Areas) AuthorityCodes() []string {
	result := lo.Keys(as.areas)
	sort.Strings(result)
	return result
}

type jsonArea struct {
	Names    map[string]string             `json:"names"`
	Measures map[string]map[string]float64 `json:"measures"`
}

// ToJSON serializes the whole collection as
// {code: {names: {lang: name}, measures: {code: {"year": value}}}}.
// Year keys become their decimal text because JSON object keys must be
// strings. An empty collection serializes to {}.
func (as *Areas) ToJSON() (string, error) {
	root := map[string]jsonArea{}

	for code, area := range as.areas {
		measures := map[string]map[string]float64{}
		for measureCode, measure := range area.measures {
			values := map[string]float64{}
			for year, value := range measure.values {
				values[strconv.Itoa(year)] = value
			}
			measures[measureCode] = values
		}

		root[code] = jsonArea{
			Names:    area.names,
			Measures: measures,
		}
	}

	marshaled, err := json.Marshal(root)
	if err != nil {
		return "", errors.Wrap(err, "serializing areas")
	}

	return string(marshaled), nil
}

// WriteTable renders each area's block in ascending authority code order,
// separated by blank lines.
func (as *Areas) WriteTable(w io.Writer) {
	for _, code := range as.AuthorityCodes() {
		as.areas[code].WriteTable(w)
		fmt.Fprintln(w)
	}
}

func (as *Areas) String() string {
	sb := strings.Builder{}
	as.WriteTable(&sb)
	return sb.String()
}
