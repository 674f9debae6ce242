package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEvaluateCommand creates the evaluate command
func NewEvaluateCommand() *cobra.Command {
	var (
		vars      []string
		asJSON    bool
		noColor   bool
		maxVisits int
	)

	cmd := &cobra.Command{
		Use:   "evaluate [plan-file | plan-id | plan-name]",
		Short: "Compute the steady-state flow of a plan",
		Long: `Load a plan, propagate flow through every building and print the result.

The plan may be an HCL plan file or the ID or name of a stored plan. Without
an argument the default plan set with 'factoryplan plan use' is evaluated.

Variables declared in a plan file can be overridden with --var name=value.

Examples:
  factoryplan evaluate iron-plates.hcl
  factoryplan evaluate iron-plates.hcl --var speed=150 --var purity=pure
  factoryplan evaluate iron-plates --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxVisits < 0 {
				return fmt.Errorf("--max-visits must be positive")
			}

			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}

			ctx := cmd.Context()
			doc, err := rt.resolveDocument(ctx, ref, vars)
			if err != nil {
				return err
			}
			doc.FillTransport(rt.cfg.Planner.DefaultBelt, rt.cfg.Planner.DefaultPipe)

			s, err := rt.newSession(maxVisits)
			if err != nil {
				return err
			}
			if err := s.load(ctx, doc); err != nil {
				return fmt.Errorf("failed to load plan %q: %w", doc.Name, err)
			}

			report, err := s.report(ctx)
			if err != nil {
				return err
			}

			formatter := NewFlowFormatter(!noColor && !asJSON)
			if asJSON {
				out, err := formatter.FormatJSON(report)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Plan: %s\n\n", doc.Name)
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
			}

			if err := s.finish(); err != nil {
				rt.logger.Warn("failed to write metrics", "path", s.textfile, "error", err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Override a plan variable (name=value, repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().IntVar(&maxVisits, "max-visits", 0, "Times a building may repeat on one propagation path (default from config)")

	return cmd
}
