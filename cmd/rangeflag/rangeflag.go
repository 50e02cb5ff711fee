// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package rangeflag parses the "lo...hi" (or bare integer) range argument
// shared by the external driver CLIs (spec.md §6).
package rangeflag

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse accepts either a single integer ("8") or an inclusive range
// ("4...12") and returns lo <= hi.
func Parse(s string) (lo, hi int, err error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "..."); i >= 0 {
		loStr, hiStr := s[:i], s[i+3:]
		lo, err = strconv.Atoi(strings.TrimSpace(loStr))
		if err != nil {
			return 0, 0, errors.Wrapf(err, "rangeflag: bad lower bound %q", loStr)
		}
		hi, err = strconv.Atoi(strings.TrimSpace(hiStr))
		if err != nil {
			return 0, 0, errors.Wrapf(err, "rangeflag: bad upper bound %q", hiStr)
		}
		if lo > hi {
			return 0, 0, errors.Errorf("rangeflag: empty range %d...%d", lo, hi)
		}
		return lo, hi, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "rangeflag: bad integer %q", s)
	}
	return v, v, nil
}

// ParsePattern accepts a permutation pattern as comma-separated digits
// ("1,3,2,4") or a bare digit string ("1324").
func ParsePattern(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		for _, r := range s {
			fields = append(fields, string(r))
		}
	}
	pattern := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "rangeflag: bad pattern digit %q", f)
		}
		pattern[i] = v
	}
	return pattern, nil
}
