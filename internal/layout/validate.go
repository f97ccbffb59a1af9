package layout

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ade-labs/ade/internal/manifest"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// Report is the outcome of Validate.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
	// Missing lists required directories that do not exist, as slash paths
	// relative to the validated root.
	Missing []string
}

// Validate inspects root on fsys. Forbidden root directories are errors;
// missing required service subdirectories are warnings recorded in Missing.
// When the layout is not enforced the report is valid and empty.
func Validate(fsys afero.Fs, root string, conv manifest.DomainLayout) (*Report, error) {
	fi, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", root)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	report := &Report{Valid: true}
	if !conv.Enforce {
		return report, nil
	}

	denied := make(map[string]bool, len(conv.DenyAtRoot))
	for _, name := range conv.DenyAtRoot {
		denied[name] = true
	}

	domains, err := subdirs(fsys, root)
	if err != nil {
		return nil, err
	}

	var forbidden []string
	for _, domain := range domains {
		if denied[domain] {
			forbidden = append(forbidden, domain)
			continue
		}

		services, err := subdirs(fsys, filepath.Join(root, domain))
		if err != nil {
			return nil, err
		}
		for _, service := range services {
			for _, required := range conv.RequiredSubdirs {
				rel := path.Join(domain, service, required)
				ok, err := dirExists(fsys, filepath.Join(root, filepath.FromSlash(rel)))
				if err != nil {
					return nil, err
				}
				if ok {
					continue
				}
				report.Missing = append(report.Missing, rel)
				report.Warnings = append(report.Warnings, "missing required directory: "+rel)
			}
		}
	}

	if len(forbidden) > 0 {
		report.Valid = false
		report.Errors = append(report.Errors,
			"found forbidden directories at root level: "+strings.Join(forbidden, ", "))
		report.Warnings = append(report.Warnings,
			"consider moving these into domain-specific directories")
	}

	return report, nil
}

// Fix creates every directory listed in report.Missing under root and
// returns the ones created. All paths are attempted; failures are combined.
func Fix(fsys afero.Fs, root string, report *Report) ([]string, error) {
	var created []string
	var errs error
	for _, rel := range report.Missing {
		if err := fsys.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("creating %s: %w", rel, err))
			continue
		}
		created = append(created, rel)
	}
	return created, errs
}

// dirExists reports whether dir is a directory. A missing path is not an
// error; any other stat failure is.
func dirExists(fsys afero.Fs, dir string) (bool, error) {
	fi, err := fsys.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", dir, err)
	}
	return fi.IsDir(), nil
}

// subdirs lists the non-hidden directories directly under dir, sorted by name.
func subdirs(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
