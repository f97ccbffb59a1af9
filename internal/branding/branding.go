// Package branding provides compile-time identity values for the CLI.
//
// The embedded branding.yaml overrides the hard defaults below, so a fork can
// rename the binary, its dot-directory and its environment prefix without
// touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	RegistryFile string `yaml:"registry_file"`
	RegistryPath string `yaml:"registry_path"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "ade",
			DisplayName:  "ADE",
			Description:  "Domain-driven project scaffolding from a declarative stack registry",
			HomeDir:      ".ade",
			EnvPrefix:    "ADE",
			GoModule:     "github.com/ade-labs/ade",
			RegistryFile: "stack-registry.json",
			RegistryPath: "cli/config/stack-registry.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ade").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ADE").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ade").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ADE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RegistryFile returns the bare file name of the stack registry document.
func RegistryFile() string { load(); return defaults.RegistryFile }

// RegistryPath returns the conventional project-relative registry location.
func RegistryPath() string { load(); return defaults.RegistryPath }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("registry") → "ADE_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
