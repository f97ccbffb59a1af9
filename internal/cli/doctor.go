package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ade-labs/ade/internal/branding"
	"github.com/ade-labs/ade/internal/config"
	"github.com/ade-labs/ade/internal/manifest"
	"github.com/ade-labs/ade/internal/registry"
	"github.com/spf13/cobra"
)

var doctorCheckRegistry string

func init() {
	doctorCmd.Flags().StringVar(&doctorCheckRegistry, "check-registry", "", "Validate a registry document at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for configuration and the stack registry",
	Long: `Report where configuration is read from, which registry locations are
searched and which one is used, and whether that registry document is valid.
With --check-registry only the given document is validated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if doctorCheckRegistry != "" {
			return runRegistryCheck(out, doctorCheckRegistry)
		}

		runConfigCheck(out)
		path := runDiscoveryCheck(out)
		if path == "" {
			return &registry.LoadError{Err: fmt.Errorf("no registry document found")}
		}
		return runRegistryCheck(out, path)
	},
}

func runConfigCheck(out io.Writer) {
	fmt.Fprintln(out, "Config check:")
	file := config.FilePath()
	if _, err := os.Stat(file); err != nil {
		fmt.Fprintf(out, "  [INFO] %s not present, using defaults\n", file)
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", file)
	}
	for _, key := range config.Keys {
		fmt.Fprintf(out, "  %s = %q\n", key, config.Get(key))
	}
}

// runDiscoveryCheck prints every registry location in search order and
// returns the one that would be loaded, or "" if none exists.
func runDiscoveryCheck(out io.Writer) string {
	fmt.Fprintln(out, "Registry discovery:")

	if explicit := config.Get(config.KeyRegistry); explicit != "" {
		if _, err := registry.FindFile(explicit, nil); err != nil {
			fmt.Fprintf(out, "  [FAIL] %s (from config key %q): %v\n", explicit, config.KeyRegistry, err)
			return ""
		}
		fmt.Fprintf(out, "  [ OK ] %s (from config key %q)\n", explicit, config.KeyRegistry)
		return explicit
	}

	var found string
	for _, c := range registry.DefaultCandidates(branding.RegistryPath(), branding.RegistryFile(), config.Dir()) {
		if _, err := registry.FindFile(c, nil); err != nil {
			fmt.Fprintf(out, "  [MISS] %s\n", c)
			continue
		}
		if found == "" {
			found = c
			fmt.Fprintf(out, "  [ OK ] %s (selected)\n", c)
		} else {
			fmt.Fprintf(out, "  [ OK ] %s (shadowed)\n", c)
		}
	}
	return found
}

func runRegistryCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Registry validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return &registry.LoadError{Path: path, Err: err}
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return &registry.LoadError{Path: path, Err: fmt.Errorf("%d validation issue(s)", len(result.Issues))}
	}

	reg, err := registry.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] %d stack(s), %d extension module(s)\n", len(reg.Stacks()), len(reg.Extensions()))
	return nil
}
