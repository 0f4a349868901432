package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a finite float from user input. NaN and ±Inf are rejected.
func ParseNumber(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidInput, key, v)
	}
	return f, nil
}
