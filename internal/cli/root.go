package cli

import (
	"fmt"

	"github.com/ade-labs/ade/internal/branding"
	"github.com/ade-labs/ade/internal/config"
	"github.com/ade-labs/ade/internal/logging"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel string
	// logger is built from --log-level before any subcommand runs.
	logger = logr.Discard()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves a declarative stack registry into a plan of folders and
files for a domain-driven project, and either previews that plan or creates it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			level = config.Get(config.KeyLogLevel)
		}
		l, err := logging.New(level, cmd.ErrOrStderr())
		if err != nil {
			return usageErrorf("%v", err)
		}
		logger = l
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags and
// prints any error to stderr. Use ExitCode to turn the error into a status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", color.RedString("Error:"), err)
	}
	return err
}
