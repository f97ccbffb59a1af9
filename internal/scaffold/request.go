package scaffold

import (
	"strings"
	"unicode"

	"github.com/ade-labs/ade/internal/registry"
)

// Request is one scaffold invocation.
type Request struct {
	Language  string
	Framework string
	Service   string
	Domain    string
	Preview   bool
	With      []string // extension names, applied in order
}

// ParseWith splits a comma-separated extension list. Entries are trimmed,
// empty entries are dropped and a repeated name keeps its first position.
// Names compare the way the registry does; the first spelling is kept.
func ParseWith(s string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := registry.Normalize(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	return names
}

// ValidateDomain checks that domain can be used as a single path segment.
func ValidateDomain(domain string) error {
	switch {
	case domain == "":
		return &InvalidDomainError{Domain: domain, Reason: "must not be empty"}
	case strings.TrimSpace(domain) != domain:
		return &InvalidDomainError{Domain: domain, Reason: "must not start or end with whitespace"}
	case domain == "." || domain == "..":
		return &InvalidDomainError{Domain: domain, Reason: "must not be a relative directory reference"}
	case strings.Contains(domain, ".."):
		return &InvalidDomainError{Domain: domain, Reason: "must not contain '..'"}
	case strings.ContainsAny(domain, `/\`):
		return &InvalidDomainError{Domain: domain, Reason: "must not contain path separators"}
	}
	for _, r := range domain {
		if unicode.IsControl(r) {
			return &InvalidDomainError{Domain: domain, Reason: "must not contain control characters"}
		}
	}
	return nil
}
