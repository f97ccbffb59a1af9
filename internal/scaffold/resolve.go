package scaffold

import (
	"strings"

	"github.com/ade-labs/ade/internal/registry"
)

// PreviewNote is appended to the notes of every plan resolved in preview mode.
const PreviewNote = "preview only"

// Registry is the read-only lookup surface Resolve needs.
type Registry interface {
	Lookup(key registry.StackKey) (registry.StackDefinition, bool)
	LookupExtension(name string) (registry.ExtensionModule, bool)
}

// Plan is the resolved set of paths and notes for one request.
type Plan struct {
	Language  string   `json:"language" yaml:"language"`
	Framework string   `json:"framework" yaml:"framework"`
	Service   string   `json:"service" yaml:"service"`
	Domain    string   `json:"domain" yaml:"domain"`
	Folders   []string `json:"folders" yaml:"folders"`
	Files     []string `json:"files" yaml:"files"`
	Notes     []string `json:"notes" yaml:"notes"`
}

// Resolve builds the plan for req. The domain is validated before the
// registry is consulted, and every requested extension must exist before
// any path is computed. Base paths come first, then each extension's in
// request order; a path already present is dropped. Notes are concatenated
// in the same order without deduplication.
func Resolve(req Request, reg Registry) (*Plan, error) {
	domain := req.Domain
	if err := ValidateDomain(domain); err != nil {
		return nil, err
	}

	key := registry.NewStackKey(req.Language, req.Framework, req.Service)
	base, ok := reg.Lookup(key)
	if !ok {
		return nil, &UnknownStackError{
			Language:  req.Language,
			Framework: req.Framework,
			Service:   req.Service,
		}
	}

	exts := make([]registry.ExtensionModule, 0, len(req.With))
	for _, name := range req.With {
		ext, ok := reg.LookupExtension(name)
		if !ok {
			return nil, &UnknownExtensionError{Name: name}
		}
		exts = append(exts, ext)
	}

	folders := newPathSet()
	files := newPathSet()
	notes := []string{}

	merge := func(folderTmpls, fileTmpls, noteTmpls []string) {
		for _, t := range folderTmpls {
			folders.Add(registry.Expand(t, domain))
		}
		for _, t := range fileTmpls {
			files.Add(registry.Expand(t, domain))
		}
		for _, n := range noteTmpls {
			notes = append(notes, registry.Expand(n, domain))
		}
	}

	merge(base.Folders, base.Files, base.Notes)
	for _, ext := range exts {
		merge(ext.Folders, ext.Files, ext.Notes)
	}

	if req.Preview {
		notes = append(notes, PreviewNote)
	}

	return &Plan{
		Language:  strings.TrimSpace(req.Language),
		Framework: strings.TrimSpace(req.Framework),
		Service:   strings.TrimSpace(req.Service),
		Domain:    domain,
		Folders:   folders.Paths(),
		Files:     files.Paths(),
		Notes:     notes,
	}, nil
}
