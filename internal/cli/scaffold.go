package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ade-labs/ade/internal/branding"
	"github.com/ade-labs/ade/internal/config"
	"github.com/ade-labs/ade/internal/registry"
	"github.com/ade-labs/ade/internal/scaffold"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	scaffoldLanguage  string
	scaffoldFramework string
	scaffoldService   string
	scaffoldDomain    string
	scaffoldPreview   bool
	scaffoldRegistry  string
	scaffoldWith      string
	scaffoldOutput    string
	scaffoldFormat    string
	scaffoldWorkers   int
)

func init() {
	f := scaffoldCmd.Flags()
	f.StringVar(&scaffoldLanguage, "language", "", "Stack language (required)")
	f.StringVar(&scaffoldFramework, "framework", "", "Stack framework (required)")
	f.StringVar(&scaffoldService, "service", "", "Stack service kind (required)")
	f.StringVar(&scaffoldDomain, "domain", "", "Domain name used as the root directory (required)")
	f.BoolVar(&scaffoldPreview, "preview", false, "Print the plan without touching the filesystem")
	f.StringVar(&scaffoldRegistry, "registry", "", "Path to the stack registry document")
	f.StringVar(&scaffoldWith, "with", "", "Comma-separated extension modules to include")
	f.StringVar(&scaffoldOutput, "output", "", "Directory the domain is created in (default from config, else .)")
	f.StringVar(&scaffoldFormat, "format", "", "Preview format: json or yaml (default from config, else json)")
	f.IntVar(&scaffoldWorkers, "workers", scaffold.DefaultWorkers, "Maximum files created concurrently")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Scaffold a domain for a registered stack",
	Long: `Resolve a stack (language, framework, service) and optional extension
modules into a plan of folders and files rooted at the domain directory.

With --preview the plan is printed and nothing is written. Otherwise the
folders and empty files are created under --output. Existing files are
never overwritten.`,
	Example: `  ade scaffold --language go --framework chi --service api --domain billing --preview
  ade scaffold --language go --framework chi --service api --domain billing --with docker,ci`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	var missing []string
	for _, req := range []struct{ name, value string }{
		{"language", scaffoldLanguage},
		{"framework", scaffoldFramework},
		{"service", scaffoldService},
		{"domain", scaffoldDomain},
	} {
		if strings.TrimSpace(req.value) == "" {
			missing = append(missing, "--"+req.name)
		}
	}
	if len(missing) > 0 {
		return usageErrorf("required flag(s) not set: %s", strings.Join(missing, ", "))
	}

	format, err := scaffold.ParseFormat(valueOrConfig(scaffoldFormat, config.KeyFormat))
	if err != nil {
		return &usageError{err: err}
	}

	req := scaffold.Request{
		Language:  scaffoldLanguage,
		Framework: scaffoldFramework,
		Service:   scaffoldService,
		Domain:    scaffoldDomain,
		Preview:   scaffoldPreview,
		With:      scaffold.ParseWith(scaffoldWith),
	}

	// Reject unsafe domains before the registry is even located.
	if err := scaffold.ValidateDomain(req.Domain); err != nil {
		return err
	}

	reg, err := loadRegistry(scaffoldRegistry)
	if err != nil {
		return err
	}

	plan, err := scaffold.Resolve(req, reg)
	if err != nil {
		return err
	}
	logger.V(1).Info("resolved plan",
		"stack", registry.NewStackKey(req.Language, req.Framework, req.Service).String(),
		"folders", len(plan.Folders), "files", len(plan.Files))

	if scaffoldPreview {
		return scaffold.EncodePlan(cmd.OutOrStdout(), plan, format)
	}

	output := valueOrConfig(scaffoldOutput, config.KeyOutput)
	if err := os.MkdirAll(output, 0o755); err != nil {
		return &scaffold.FilesystemError{Op: "mkdir", Path: output, Err: err}
	}
	fsys := afero.NewBasePathFs(afero.NewOsFs(), output)

	result, applyErr := scaffold.Apply(cmd.Context(), fsys, plan, scaffold.ApplyOptions{
		Workers: scaffoldWorkers,
		Log:     logger,
	})
	if result != nil {
		printApplySummary(cmd, plan, result, output)
	}
	if applyErr != nil {
		return fmt.Errorf("scaffolding %s: %w", plan.Domain, applyErr)
	}
	return nil
}

// loadRegistry resolves the registry path from the flag, the config key, or
// the default search locations, in that order.
func loadRegistry(explicit string) (*registry.Registry, error) {
	explicit = valueOrConfig(explicit, config.KeyRegistry)
	candidates := registry.DefaultCandidates(branding.RegistryPath(), branding.RegistryFile(), config.Dir())

	path, err := registry.FindFile(explicit, candidates)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("loading registry", "path", path)
	return registry.Load(path)
}

func valueOrConfig(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(key)
}

func printApplySummary(cmd *cobra.Command, plan *scaffold.Plan, result *scaffold.ApplyResult, output string) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(out, "%s %s in %s\n", green("Scaffolded"), plan.Domain, output)
	scaffold.PrintTree(out, plan)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Folders: %d created, %d existing\n", len(result.CreatedFolders), len(result.ExistingFolders))
	fmt.Fprintf(out, "  Files:   %d created, %d skipped\n", len(result.CreatedFiles), len(result.SkippedFiles))
	for _, p := range result.SkippedFiles {
		fmt.Fprintf(out, "  %s %s (already exists)\n", yellow("skip"), p)
	}
	if len(plan.Notes) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Notes:")
		for _, n := range plan.Notes {
			fmt.Fprintf(out, "  - %s\n", n)
		}
	}
}
