package filters

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseYears parses the years argument: a single 4 digit year (YYYY), an
// inclusive range (YYYY-ZZZZ), or 0 / empty meaning no restriction. A 0 on
// either side of a range also disables the filter.
func ParseYears(arg string) (int, int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || arg == "0" {
		return 0, 0, nil
	}

	if !strings.Contains(arg, "-") {
		year, err := strconv.Atoi(arg)
		if err != nil || !is4DigitYear(year) {
			return 0, 0, errors.Errorf("invalid input for years argument: %v", arg)
		}
		return year, year, nil
	}

	parts := strings.SplitN(arg, "-", 2)
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, errors.Errorf("invalid input for years argument: %v", arg)
	}

	if first == 0 || second == 0 {
		return 0, 0, nil
	}
	if !is4DigitYear(first) || !is4DigitYear(second) {
		return 0, 0, errors.Errorf("invalid input for years argument: %v", arg)
	}
	return first, second, nil
}

func is4DigitYear(year int) bool {
	return year > 999 && year < 10000
}
