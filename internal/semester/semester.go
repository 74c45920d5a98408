// Package semester maps between the registrar's semester records and the
// YYYYNN keys and labels used by catalogs.
package semester

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/DjordjeVuckovic/course-graph/internal/apperr"
)

// Season codes inside a key.
const (
	Winter = "01"
	Spring = "02"
	Summer = "03"
)

// Labels attached to catalog entries.
const (
	WinterLabel = "חורף"
	SpringLabel = "אביב"
	SummerLabel = "קיץ"
)

// sapBase is the registrar code of the winter semester; spring is sapBase+1.
const sapBase = 200

// Record is one semester as published by the registrar.
type Record struct {
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Key returns the YYYYNN key of the record, e.g. {2024, 201} → "202402".
func (r Record) Key() string {
	return fmt.Sprintf("%d%02d", r.Year, r.Semester-sapBase+1)
}

// Index keys the registrar records by semester key.
func Index(records []Record) map[string]Period {
	out := make(map[string]Period, len(records))
	for _, r := range records {
		out[r.Key()] = Period{Start: r.Start, End: r.End}
	}
	return out
}

// Split breaks a key into its year and season code.
func Split(key string) (int, string, error) {
	if len(key) != 6 {
		return 0, "", apperr.NewValidation(fmt.Sprintf("invalid semester key %q", key))
	}
	year, err := strconv.Atoi(key[:4])
	if err != nil {
		return 0, "", apperr.NewValidationWrap(fmt.Sprintf("invalid semester year in %q", key), err)
	}
	return year, key[4:], nil
}

// SAPCode maps a key to the registrar's year and semester code. Only winter and
// spring have published course files; anything else is an error.
func SAPCode(key string) (string, string, error) {
	year, season, err := Split(key)
	if err != nil {
		return "", "", err
	}
	switch season {
	case Winter:
		return strconv.Itoa(year), strconv.Itoa(sapBase), nil
	case Spring:
		return strconv.Itoa(year), strconv.Itoa(sapBase + 1), nil
	default:
		return "", "", apperr.NewValidation(fmt.Sprintf("unknown semester code: %s", season))
	}
}

// Rank orders labels within an academic year: winter, spring, summer, then
// anything unknown.
func Rank(label string) int {
	switch label {
	case WinterLabel:
		return 0
	case SpringLabel:
		return 1
	case SummerLabel:
		return 2
	default:
		return 3
	}
}

// Label returns the catalog label for a key.
func Label(key string) (string, error) {
	_, season, err := Split(key)
	if err != nil {
		return "", err
	}
	switch season {
	case Winter:
		return WinterLabel, nil
	case Spring:
		return SpringLabel, nil
	case Summer:
		return SummerLabel, nil
	default:
		return "", apperr.NewValidation(fmt.Sprintf("unknown semester code: %s", season))
	}
}

// LatestWinterAndSpring picks the most recent winter and spring keys. Either is
// empty when no such semester is known. Malformed keys are ignored.
func LatestWinterAndSpring(keys []string) (winter, spring string) {
	sorted := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, _, err := Split(k); err == nil {
			sorted = append(sorted, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	for _, k := range sorted {
		switch k[4:] {
		case Winter:
			if winter == "" {
				winter = k
			}
		case Spring:
			if spring == "" {
				spring = k
			}
		}
	}
	return winter, spring
}
