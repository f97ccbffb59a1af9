package registry

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims s and applies Unicode case folding, so "Go", "GO" and
// " go " all compare equal.
func Normalize(s string) string {
	// A Caser is stateful; build one per call.
	return cases.Fold().String(strings.TrimSpace(s))
}
