package drill

import (
	"strconv"
	"strings"
)

// ParseAnswer reads a typed answer as a base-10 integer. ok is false for
// empty or non-numeric input; callers score that as a wrong answer.
func ParseAnswer(raw string) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
