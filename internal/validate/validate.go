package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSKU     = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)
	reDueDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product ids, order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSKU.MatchString(s)
}

// Qty clamps a requested quantity to [1,50] to avoid abuse.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Query trims and caps a catalog search term. An empty query is fine and
// means "no search filter".
func Query(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

// DueDate accepts the wizard's date input (YYYY-MM-DD).
func DueDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDueDate.MatchString(s)
}

// Name validates a displayable person name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// DataURI accepts an inline image payload (bespoke-request photo capture).
func DataURI(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, strings.HasPrefix(s, "data:image/")
}
