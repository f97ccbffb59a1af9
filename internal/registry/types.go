package registry

import "strings"

// StackKey identifies a base stack definition. Construct it with NewStackKey
// so every component is normalized.
type StackKey struct {
	Language  string
	Framework string
	Service   string
}

// NewStackKey returns a key with each component trimmed and case-folded.
func NewStackKey(language, framework, service string) StackKey {
	return StackKey{
		Language:  Normalize(language),
		Framework: Normalize(framework),
		Service:   Normalize(service),
	}
}

// String renders the key as "language/framework/service".
func (k StackKey) String() string {
	return strings.Join([]string{k.Language, k.Framework, k.Service}, "/")
}

// StackDefinition is the scaffold shape for one stack. Folder and file
// entries are path templates in declaration order; callers must not modify
// the slices.
type StackDefinition struct {
	Key         StackKey
	Description string
	Folders     []string
	Files       []string
	Notes       []string
}

// ExtensionModule contributes extra templates and notes on top of a stack.
type ExtensionModule struct {
	Name        string
	Description string
	Folders     []string
	Files       []string
	Notes       []string
}
