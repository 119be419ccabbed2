package model

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Area is one geographic administrative area: a local authority code, its
// display names by language, and its measures by codename. Names are keyed
// by lowercased ISO-639-3 style codes; measures by lowercased codenames.
// The authority code is stored verbatim.
type Area struct {
	authorityCode string
	names         map[string]string
	measures      map[string]*Measure
}

func NewArea(authorityCode string) *Area {
	return &Area{
		authorityCode: authorityCode,
		names:         map[string]string{},
		measures:      map[string]*Measure{},
	}
}

func (a *Area) AuthorityCode() string {
	return a.authorityCode
}

func (a *Area) Name(lang string) (string, error) {
	name, ok := a.names[strings.ToLower(lang)]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "no name found for language %v", lang)
	}
	return name, nil
}

func (a *Area) HasName(lang string) bool {
	_, ok := a.names[strings.ToLower(lang)]
	return ok
}

// SetName stores a display name under the lowercased language code. The
// code must be exactly three alphabetic letters.
func (a *Area) SetName(lang, name string) error {
	if !isLanguageCode(lang) {
		return errors.Wrapf(ErrInvalidArgument,
			"language code must be three alphabetical letters only: %v", lang)
	}

	a.names[strings.ToLower(lang)] = name
	return nil
}

func isLanguageCode(lang string) bool {
	runes := []rune(lang)
	if len(runes) != 3 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (a *Area) Measure(code string) (*Measure, error) {
	m, ok := a.measures[strings.ToLower(code)]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no measure found matching %v", code)
	}
	return m, nil
}

// SetMeasure merges the given measure into the one already stored under
// the lowercased code, the incoming values winning on year collisions. If
// no measure with that code exists yet a copy is inserted, so later
// changes to the argument do not leak in.
func (a *Area) SetMeasure(code string, measure *Measure) {
	code = strings.ToLower(code)

	if existing, ok := a.measures[code]; ok {
		existing.Merge(measure)
	} else {
		a.measures[code] = measure.Clone()
	}
}

func (a *Area) Size() int {
	return len(a.measures)
}

func (a *Area) MeasureCodes() []string {
	result := lo.Keys(a.measures)
	sort.Strings(result)
	return result
}

// Merge unions other into this area: names overwrite on a language
// collision, measures combine per Measure.Merge with other's values
// taking precedence.
func (a *Area) Merge(other *Area) {
	for lang, name := range other.names {
		a.names[lang] = name
	}
	for code, measure := range other.measures {
		a.SetMeasure(code, measure)
	}
}

func (a *Area) Equal(other *Area) bool {
	if a.authorityCode != other.authorityCode ||
		len(a.names) != len(other.names) ||
		len(a.measures) != len(other.measures) {
		return false
	}
	for lang, name := range a.names {
		otherName, ok := other.names[lang]
		if !ok || otherName != name {
			return false
		}
	}
	for code, measure := range a.measures {
		otherMeasure, ok := other.measures[code]
		if !ok || !measure.Equal(otherMeasure) {
			return false
		}
	}
	return true
}

// WriteTable renders the area header ("English / Welsh" when both names
// exist, a single name otherwise, "Unnamed" when none) followed by each
// measure's block in ascending codename order.
func (a *Area) WriteTable(w io.Writer) {
	eng, hasEng := a.names["eng"]
	cym, hasCym := a.names["cym"]

	switch {
	case hasEng && hasCym:
		fmt.Fprintf(w, "%v / %v", eng, cym)
	case hasEng:
		_, _ = io.WriteString(w, eng)
	case hasCym:
		_, _ = io.WriteString(w, cym)
	default:
		_, _ = io.WriteString(w, "Unnamed")
	}
	fmt.Fprintf(w, " (%v)\n", a.authorityCode)

	if len(a.measures) == 0 {
		fmt.Fprintln(w, "<no measures>")
		return
	}

	for _, code := range a.MeasureCodes() {
		a.measures[code].WriteTable(w)
		fmt.Fprintln(w)
	}
}

func (a *Area) String() string {
	sb := strings.Builder{}
	a.WriteTable(&sb)
	return sb.String()
}
