package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
)

// NewRecipesCommand creates the recipes command
func NewRecipesCommand() *cobra.Command {
	var alternates bool

	cmd := &cobra.Command{
		Use:   "recipes <building-kind>",
		Short: "List the recipes a building can run",
		Long: `List every recipe a building kind can run with its per-minute rates at
100% clock speed.

Examples:
  factoryplan recipes smelter
  factoryplan recipes constructor --alternates`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseBuildingKind(args[0])
			if err != nil {
				return err
			}
			recipes := catalog.RecipesFor(kind)
			if len(recipes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s does not use recipes\n", catalog.MustBuilding(kind).Name)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tINPUTS\tOUTPUTS")
			for _, r := range recipes {
				if r.Alternate && !alternates {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, recipeSide(r, true), recipeSide(r, false))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&alternates, "alternates", false, "Include alternate recipes")
	return cmd
}

func recipeSide(r catalog.Recipe, inputs bool) string {
	layout := r.Layout()
	count := layout.Outputs()
	if inputs {
		count = layout.Inputs()
	}

	var parts []string
	for port := 0; port < count; port++ {
		var (
			res  catalog.Resource
			ok   bool
			rate float64
		)
		if inputs {
			res, ok = r.InputResource(port)
			rate = r.InputPerMinute(port)
		} else {
			res, ok = r.OutputResource(port)
			rate = r.OutputPerMinute(port)
		}
		if ok {
			parts = append(parts, fmt.Sprintf("%s %s/min", res.Name(), formatRate(rate)))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// NewBuildingsCommand creates the buildings command
func NewBuildingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buildings",
		Short: "List the building kinds a plan can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tNAME\tINPUTS\tOUTPUTS\tPOWER\tAMPLIFIERS\tRECIPES")
			for _, kind := range catalog.AllKinds {
				spec := catalog.MustBuilding(kind)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s MW\t%d\t%d\n",
					spec.Kind, spec.Name,
					spec.Layout.Inputs(), spec.Layout.Outputs(),
					formatPower(spec.BasePowerMW), spec.AmplifierSlots,
					len(catalog.RecipesFor(kind)))
			}
			return w.Flush()
		},
	}
}
