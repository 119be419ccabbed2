package filters

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
)

// Filters restricts what ingestion commits to the collection: a set of
// authority codes (matched uppercased), a set of measure codes (matched
// lowercased) and an inclusive year range where (0,0) means unrestricted.
// Empty sets mean no restriction. Rules containing * are glob patterns.
//
// A nil *Filters matches everything.
type Filters struct {
	areas        *set.Set[string]
	areaGlobs    []glob.Glob
	measures     *set.Set[string]
	measureGlobs []glob.Glob

	minYear int
	maxYear int
}

func New() *Filters {
	return &Filters{
		areas:    set.New[string](10),
		measures: set.New[string](10),
	}
}

func (f *Filters) AddAreas(rules ...string) error {
	for _, rule := range rules {
		rule = strings.ToUpper(strings.TrimSpace(rule))
		if rule == "" {
			continue
		}

		if strings.Contains(rule, "*") {
			g, err := glob.Compile(rule)
			if err != nil {
				return errors.Wrapf(err, "invalid area filter: %v", rule)
			}
			f.areaGlobs = append(f.areaGlobs, g)
		} else {
			f.areas.Insert(rule)
		}
	}
	return nil
}

func (f *Filters) AddMeasures(rules ...string) error {
	for _, rule := range rules {
		rule = strings.ToLower(strings.TrimSpace(rule))
		if rule == "" {
			continue
		}

		if strings.Contains(rule, "*") {
			g, err := glob.Compile(rule)
			if err != nil {
				return errors.Wrapf(err, "invalid measure filter: %v", rule)
			}
			f.measureGlobs = append(f.measureGlobs, g)
		} else {
			f.measures.Insert(rule)
		}
	}
	return nil
}

func (f *Filters) SetYearRange(min, max int) {
	f.minYear = min
	f.maxYear = max
}

func (f *Filters) MatchArea(code string) bool {
	if f == nil || ((f.areas == nil || f.areas.Size() == 0) && len(f.areaGlobs) == 0) {
		return true
	}

	code = strings.ToUpper(code)
	if f.areas != nil && f.areas.Contains(code) {
		return true
	}
	for _, g := range f.areaGlobs {
		if g.Match(code) {
			return true
		}
	}
	return false
}

func (f *Filters) MatchMeasure(code string) bool {
	if f == nil || ((f.measures == nil || f.measures.Size() == 0) && len(f.measureGlobs) == 0) {
		return true
	}

	code = strings.ToLower(code)
	if f.measures != nil && f.measures.Contains(code) {
		return true
	}
	for _, g := range f.measureGlobs {
		if g.Match(code) {
			return true
		}
	}
	return false
}

func (f *Filters) MatchYear(year int) bool {
	if f == nil || (f.minYear == 0 && f.maxYear == 0) {
		return true
	}
	return year >= f.minYear && year <= f.maxYear
}
