package drill

import (
	"errors"
	"fmt"
	"strconv"
)

var errEmptyBinary = errors.New("empty binary string")

// ToBinaryString formats a non-negative integer in base 2 without leading
// zeros. Zero formats as "0".
func ToBinaryString(n int) string {
	return strconv.FormatInt(int64(n), 2)
}

// ParseBinary is the inverse of ToBinaryString.
func ParseBinary(s string) (int, error) {
	if s == "" {
		return 0, errEmptyBinary
	}
	v, err := strconv.ParseUint(s, 2, 63)
	if err != nil {
		return 0, fmt.Errorf("parsing binary %q: %w", s, err)
	}
	return int(v), nil
}
