package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration settings",
		Long: `Show factoryplan configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (FP_* prefix, DATABASE_URL)
2. Config file (factoryplan.yaml)
3. Default values

User preferences (default plan) are stored in ~/.factoryplan/config.json

Examples:
  factoryplan config show
  factoryplan config show --json`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current configuration settings.

Shows both system configuration and user preferences.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Load system config
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			// Load user config
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			if asJSON {
				masked := *cfg
				masked.Database.URL = maskPassword(cfg.Database.URL)
				if masked.Database.Password != "" {
					masked.Database.Password = "xxxxx"
				}
				fmt.Fprintln(out, prettyPrint(map[string]interface{}{
					"config": masked,
					"user":   userCfg,
				}))
				return nil
			}

			// Display configuration
			fmt.Fprintln(out, "factoryplan Configuration")
			fmt.Fprintln(out, "=========================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.DefaultPlan != "" {
				fmt.Fprintf(out, "  Default Plan:     %s\n", userCfg.DefaultPlan)
			} else {
				fmt.Fprintf(out, "  Default Plan:     (not set)\n")
			}

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}
			fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Fprintln(out, "\nPlanner:")
			fmt.Fprintf(out, "  Max Node Visits:  %d\n", cfg.Planner.MaxNodeVisits)
			fmt.Fprintf(out, "  Default Belt:     %s\n", orNotSet(cfg.Planner.DefaultBelt))
			fmt.Fprintf(out, "  Default Pipe:     %s\n", orNotSet(cfg.Planner.DefaultPipe))

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Textfile:         %s\n", orNotSet(cfg.Metrics.TextfilePath))

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the configuration as JSON")
	return cmd
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
