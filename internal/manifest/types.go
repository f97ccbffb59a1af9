package manifest

// Document is the decoded stack registry document.
type Document struct {
	Version     string                    `yaml:"version" json:"version"`
	Conventions Conventions               `yaml:"conventions,omitempty" json:"conventions,omitempty"`
	Stacks      []StackEntry              `yaml:"stacks" json:"stacks"`
	Extensions  map[string]ExtensionEntry `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Conventions holds project-wide layout rules.
type Conventions struct {
	DomainLayout DomainLayout `yaml:"domainLayout" json:"domainLayout"`
}

// DomainLayout describes the expected <domain>/<service>/ tree.
type DomainLayout struct {
	Enforce         bool     `yaml:"enforce" json:"enforce"`
	BasePattern     string   `yaml:"basePattern,omitempty" json:"basePattern,omitempty"`
	RequiredSubdirs []string `yaml:"requiredSubdirs,omitempty" json:"requiredSubdirs,omitempty"`
	DenyAtRoot      []string `yaml:"denyAtRoot,omitempty" json:"denyAtRoot,omitempty"`
}

// StackEntry is one (language, framework, service) definition.
type StackEntry struct {
	Language    string   `yaml:"language" json:"language"`
	Framework   string   `yaml:"framework" json:"framework"`
	Service     string   `yaml:"service" json:"service"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Folders     []string `yaml:"folders" json:"folders"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
	Notes       []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ExtensionEntry is a named module merged on top of a stack.
type ExtensionEntry struct {
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Folders     []string `yaml:"folders,omitempty" json:"folders,omitempty"`
	Files       []string `yaml:"files,omitempty" json:"files,omitempty"`
	Notes       []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}
