package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/planfile"
	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
	"github.com/andrescamacho/factoryplan-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/database"
	"github.com/andrescamacho/factoryplan-go/pkg/utils"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage stored plans",
		Long: `Store plan files in the plan database and manage them.

Stored plans can be evaluated by ID or name, exported back to HCL and
selected as the default plan for 'factoryplan evaluate'.

Examples:
  factoryplan plan save iron-plates.hcl
  factoryplan plan list
  factoryplan plan show iron-plates
  factoryplan plan export iron-plates copy.hcl
  factoryplan plan use iron-plates
  factoryplan plan delete iron-plates`,
	}

	cmd.AddCommand(newPlanSaveCommand())
	cmd.AddCommand(newPlanListCommand())
	cmd.AddCommand(newPlanShowCommand())
	cmd.AddCommand(newPlanExportCommand())
	cmd.AddCommand(newPlanDeleteCommand())
	cmd.AddCommand(newPlanUseCommand())

	return cmd
}

// withPlanStore runs fn against the configured plan database
func withPlanStore(fn func(rt *runtime, repo plan.PlanRepository) error) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	repo, db, err := rt.openPlanStore()
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(rt, repo)
}

func newPlanSaveCommand() *cobra.Command {
	var (
		vars []string
		name string
	)

	cmd := &cobra.Command{
		Use:   "save <plan-file>",
		Short: "Store a plan file",
		Long: `Parse a plan file, check that it builds a valid graph and store it.

Saving a plan under a name that is already stored replaces that plan and
keeps its ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := planfile.ParseOverrides(vars)
			if err != nil {
				return err
			}
			doc, err := planfile.Load(args[0], overrides)
			if err != nil {
				return err
			}
			if name != "" {
				doc.Name = name
			}

			return withPlanStore(func(rt *runtime, repo plan.PlanRepository) error {
				// Wiring errors only surface once the graph is built
				if err := planner.NewPlanner(rt.logger, rt.cfg.Planner.MaxNodeVisits).Load(doc); err != nil {
					return err
				}

				saved, err := savePlan(cmd.Context(), repo, doc, shared.NewRealClock())
				if err != nil {
					return err
				}
				rt.logger.Debug("plan saved", "id", saved.ID, "name", saved.Name)

				fmt.Fprintln(cmd.OutOrStdout(), "✓ Plan saved")
				fmt.Fprintf(cmd.OutOrStdout(), "  ID:        %s\n", saved.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "  Name:      %s\n", saved.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "  Buildings: %d\n", len(saved.Buildings))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Override a plan variable (name=value, repeatable)")
	cmd.Flags().StringVar(&name, "name", "", "Store under this name instead of the one in the file")
	return cmd
}

// savePlan stores doc, reusing the ID and creation time of a stored plan with
// the same name
func savePlan(ctx context.Context, repo plan.PlanRepository, doc *plan.Document, clock shared.Clock) (*plan.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	existing, err := repo.FindByName(ctx, doc.Name)
	var notFound *plan.ErrPlanNotFound
	switch {
	case err == nil:
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
		doc.Touch(clock)
	case errors.As(err, &notFound):
		stamped := plan.NewDocument(utils.GeneratePlanID(doc.Name), doc.Name, clock)
		doc.ID, doc.CreatedAt, doc.UpdatedAt = stamped.ID, stamped.CreatedAt, stamped.UpdatedAt
	default:
		return nil, err
	}

	if err := repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func newPlanListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlanStore(func(rt *runtime, repo plan.PlanRepository) error {
				docs, err := repo.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No stored plans")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tBUILDINGS\tCONNECTIONS\tUPDATED")
				for _, d := range docs {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
						d.ID, d.Name, len(d.Buildings), len(d.Connections),
						d.UpdatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}
}

func newPlanShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id | plan-name>",
		Short: "Print a stored plan as HCL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlanStore(func(rt *runtime, repo plan.PlanRepository) error {
				doc, err := common.NewPlanResolver(repo).Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(planfile.Encode(doc))
				return err
			})
		},
	}
}

func newPlanExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <plan-id | plan-name> <plan-file>",
		Short: "Write a stored plan to an HCL file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlanStore(func(rt *runtime, repo plan.PlanRepository) error {
				doc, err := common.NewPlanResolver(repo).Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := planfile.Write(args[1], doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Plan %s written to %s\n", doc.Name, args[1])
				return nil
			})
		},
	}
}

func newPlanDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id | plan-name>",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPlanStore(func(rt *runtime, repo plan.PlanRepository) error {
				doc, err := common.NewPlanResolver(repo).Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := repo.Delete(cmd.Context(), doc.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Plan %s deleted\n", doc.Name)
				return nil
			})
		},
	}
}

func newPlanUseCommand() *cobra.Command {
	var clearDefault bool

	cmd := &cobra.Command{
		Use:   "use [plan-id | plan-name]",
		Short: "Set the plan evaluated when none is given",
		Long: `Set the default plan for 'factoryplan evaluate'.

The reference may be a stored plan or a plan file path. Use --clear to remove
the default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if clearDefault {
				if err := handler.ClearDefaultPlan(); err != nil {
					return fmt.Errorf("failed to clear default plan: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Default plan cleared")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a plan reference or --clear is required")
			}

			if err := handler.SetDefaultPlan(args[0]); err != nil {
				return fmt.Errorf("failed to set default plan: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default plan set to %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearDefault, "clear", false, "Remove the default plan")
	return cmd
}
