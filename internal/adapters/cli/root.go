package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factoryplan",
		Short: "factoryplan - evaluate production lines before building them",
		Long: `factoryplan computes the steady-state flow of a factory plan: how much of
every resource each building receives and produces, how busy each machine is
and how much power the whole line draws.

Plans are written as HCL files and can be stored for later use.

Examples:
  factoryplan evaluate iron-plates.hcl
  factoryplan evaluate iron-plates.hcl --var speed=200
  factoryplan recipes smelter
  factoryplan buildings
  factoryplan plan save iron-plates.hcl
  factoryplan plan list
  factoryplan evaluate iron-plates`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: factoryplan.yaml in ., ./configs or ~/.factoryplan)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewEvaluateCommand())
	rootCmd.AddCommand(NewRecipesCommand())
	rootCmd.AddCommand(NewBuildingsCommand())
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code. Cobra
// has already printed the error by the time this returns 1.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
