package registry

import (
	"fmt"
	"path"
	"strings"
)

// Domain placeholder spellings accepted in templates.
const (
	DomainPlaceholder       = "{domain}"
	DomainPlaceholderDouble = "{{domain}}"
)

// Expand substitutes domain into every placeholder occurrence of tmpl.
func Expand(tmpl, domain string) string {
	// The double-brace form contains the single-brace one; replace it first.
	out := strings.ReplaceAll(tmpl, DomainPlaceholderDouble, domain)
	return strings.ReplaceAll(out, DomainPlaceholder, domain)
}

// checkTemplate verifies that tmpl is a relative slash path rooted at the
// domain placeholder with no parent references, and returns its clean form.
// A file template may not name the domain root itself.
func checkTemplate(tmpl string, file bool) (string, error) {
	t := strings.TrimSpace(tmpl)
	if t == "" {
		return "", fmt.Errorf("empty template")
	}
	if strings.Contains(t, `\`) {
		return "", fmt.Errorf("template %q must use forward slashes", tmpl)
	}
	if strings.HasPrefix(t, "/") {
		return "", fmt.Errorf("template %q must be relative", tmpl)
	}
	for _, seg := range strings.Split(t, "/") {
		if seg == ".." {
			return "", fmt.Errorf("template %q must not contain '..'", tmpl)
		}
	}

	clean := path.Clean(t)
	root, rest, _ := strings.Cut(clean, "/")
	if root != DomainPlaceholder && root != DomainPlaceholderDouble {
		return "", fmt.Errorf("template %q must start with %s", tmpl, DomainPlaceholder)
	}
	if file && rest == "" {
		return "", fmt.Errorf("file template %q names the domain root", tmpl)
	}
	return clean, nil
}

func checkTemplates(tmpls []string, file bool) ([]string, error) {
	out := make([]string, 0, len(tmpls))
	for _, tmpl := range tmpls {
		clean, err := checkTemplate(tmpl, file)
		if err != nil {
			return nil, err
		}
		out = append(out, clean)
	}
	return out, nil
}

// checkOverlap rejects a definition that names the same path as both a
// folder and a file. Both placeholder spellings compare equal.
func checkOverlap(folders, files []string) error {
	dirs := make(map[string]bool, len(folders))
	for _, f := range folders {
		dirs[Expand(f, DomainPlaceholder)] = true
	}
	for _, f := range files {
		if dirs[Expand(f, DomainPlaceholder)] {
			return fmt.Errorf("path %q is listed as both a folder and a file", f)
		}
	}
	return nil
}
