package cli

import (
	"fmt"

	"github.com/ade-labs/ade/internal/layout"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	validatePath     string
	validateRegistry string
	validateFix      bool
)

func init() {
	validateCmd.Flags().StringVar(&validatePath, "path", ".", "Project root to validate")
	validateCmd.Flags().StringVar(&validateRegistry, "registry", "", "Path to the stack registry document")
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "Create missing required directories")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a project tree against the registry's domain layout",
	Long: `Validate the directory structure under --path against the domainLayout
conventions of the stack registry. Forbidden root directories are errors;
missing required service subdirectories are warnings. --fix creates the
missing directories.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(validateRegistry)
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		report, err := layout.Validate(fsys, validatePath, reg.Conventions())
		if err != nil {
			return fmt.Errorf("validating %s: %w", validatePath, err)
		}
		printReport(cmd, report)

		if validateFix && len(report.Missing) > 0 {
			created, err := layout.Fix(fsys, validatePath, report)
			for _, p := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("created"), p)
			}
			if err != nil {
				return fmt.Errorf("fixing %s: %w", validatePath, err)
			}
		}

		if !report.Valid {
			return errValidationFailed
		}
		return nil
	},
}

func printReport(cmd *cobra.Command, report *layout.Report) {
	out := cmd.OutOrStdout()
	for _, e := range report.Errors {
		fmt.Fprintf(out, "%s %s\n", color.RedString("error:"), e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "%s %s\n", color.YellowString("warning:"), w)
	}
	if report.Valid {
		fmt.Fprintln(out, color.GreenString("Project structure is valid."))
	}
}
