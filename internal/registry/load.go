package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ade-labs/ade/internal/manifest"
)

// ErrLoad matches every *LoadError via errors.Is.
var ErrLoad = errors.New("registry load failed")

// LoadError reports a registry document that is missing or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading registry: %v", e.Err)
	}
	return fmt.Sprintf("loading registry %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Load reads the document at path and builds a Registry from it.
func Load(path string) (*Registry, error) {
	doc, err := manifest.ParseFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	r, err := New(doc)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return r, nil
}

// DefaultCandidates returns the registry locations searched when no path is
// given, highest priority first: the conventional project-relative path,
// a config/ fallback, then the user config directory.
func DefaultCandidates(projectPath, fileName, configDir string) []string {
	candidates := []string{projectPath, filepath.Join("config", fileName)}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, fileName))
	}
	return candidates
}

// FindFile picks the registry document to load. An explicit path must
// exist; otherwise the first existing candidate wins.
func FindFile(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", &LoadError{Path: explicit, Err: err}
		}
		return explicit, nil
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	return "", &LoadError{Err: fmt.Errorf("registry file not found; tried: %s", strings.Join(candidates, ", "))}
}
