package registry

import (
	"fmt"
	"sort"

	"github.com/ade-labs/ade/internal/manifest"
)

// Registry is the immutable lookup table of stacks and extensions.
type Registry struct {
	stacks      map[StackKey]StackDefinition
	extensions  map[string]ExtensionModule
	conventions manifest.DomainLayout
}

// New builds a Registry from a decoded document. Every template is checked
// to be rooted at the domain placeholder, so any path resolved from the
// registry stays under the domain root. A single stack or extension may not
// list the same path as both a folder and a file. Overlaps between a stack
// and an extension are only detected at apply time, where the file is
// reported as a FilesystemError.
func New(doc *manifest.Document) (*Registry, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil registry document")
	}

	r := &Registry{
		stacks:      make(map[StackKey]StackDefinition, len(doc.Stacks)),
		extensions:  make(map[string]ExtensionModule, len(doc.Extensions)),
		conventions: doc.Conventions.DomainLayout,
	}

	for i, entry := range doc.Stacks {
		key := NewStackKey(entry.Language, entry.Framework, entry.Service)
		if key.Language == "" || key.Framework == "" || key.Service == "" {
			return nil, fmt.Errorf("stack %d: language, framework and service are required", i)
		}
		if _, dup := r.stacks[key]; dup {
			return nil, fmt.Errorf("stack %d: duplicate definition for %s", i, key)
		}

		folders, err := checkTemplates(entry.Folders, false)
		if err != nil {
			return nil, fmt.Errorf("stack %s: %w", key, err)
		}
		files, err := checkTemplates(entry.Files, true)
		if err != nil {
			return nil, fmt.Errorf("stack %s: %w", key, err)
		}
		if err := checkOverlap(folders, files); err != nil {
			return nil, fmt.Errorf("stack %s: %w", key, err)
		}

		r.stacks[key] = StackDefinition{
			Key:         key,
			Description: entry.Description,
			Folders:     folders,
			Files:       files,
			Notes:       append([]string(nil), entry.Notes...),
		}
	}

	for rawName, entry := range doc.Extensions {
		name := Normalize(rawName)
		if name == "" {
			return nil, fmt.Errorf("extension with empty name")
		}
		if _, dup := r.extensions[name]; dup {
			return nil, fmt.Errorf("extension %q defined more than once", name)
		}

		folders, err := checkTemplates(entry.Folders, false)
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", name, err)
		}
		files, err := checkTemplates(entry.Files, true)
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", name, err)
		}
		if err := checkOverlap(folders, files); err != nil {
			return nil, fmt.Errorf("extension %s: %w", name, err)
		}

		r.extensions[name] = ExtensionModule{
			Name:        name,
			Description: entry.Description,
			Folders:     folders,
			Files:       files,
			Notes:       append([]string(nil), entry.Notes...),
		}
	}

	return r, nil
}

// Lookup returns the definition registered for key. The key is normalized
// before the lookup, so callers may pass raw user input.
func (r *Registry) Lookup(key StackKey) (StackDefinition, bool) {
	def, ok := r.stacks[NewStackKey(key.Language, key.Framework, key.Service)]
	return def, ok
}

// LookupExtension returns the extension module registered under name.
func (r *Registry) LookupExtension(name string) (ExtensionModule, bool) {
	ext, ok := r.extensions[Normalize(name)]
	return ext, ok
}

// Stacks returns every registered key, sorted.
func (r *Registry) Stacks() []StackKey {
	keys := make([]StackKey, 0, len(r.stacks))
	for k := range r.stacks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Extensions returns every registered extension name, sorted.
func (r *Registry) Extensions() []string {
	names := make([]string, 0, len(r.extensions))
	for name := range r.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Conventions returns the document's domain layout rules.
func (r *Registry) Conventions() manifest.DomainLayout {
	return r.conventions
}
