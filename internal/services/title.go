package services

import (
	"fmt"
	"regexp"
	"strconv"
)

// ResolveTitle returns desired unchanged unless an existing title equals it,
// in which case it returns "<desired> - (<n>)" with n one above the highest
// numbered copy already present.
func ResolveTitle(desired string, existing []string) string {
	taken := false
	for _, t := range existing {
		if t == desired {
			taken = true
			break
		}
	}
	if !taken {
		return desired
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(desired) + ` - \((\d+)\)$`)
	highest := 0
	for _, t := range existing {
		m := pattern.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s - (%d)", desired, highest+1)
}
