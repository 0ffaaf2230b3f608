package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePositiveInt parses an id-like value that must be at least 1.
func ParsePositiveInt(value string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", value)
	}
	if result < 1 {
		return 0, fmt.Errorf("%q must be positive", value)
	}
	return result, nil
}

// SplitList splits a comma separated query value, dropping blanks.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseIntList parses a comma separated list of positive ids.
func ParseIntList(value string) ([]int, error) {
	parts := SplitList(value)
	if len(parts) == 0 {
		return nil, nil
	}

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := ParsePositiveInt(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
