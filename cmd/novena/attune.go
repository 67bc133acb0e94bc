package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/planner"
)

var attuneCmd = &cobra.Command{
	Use:   "attune [text]",
	Short: "Insert the fewest symbols moving the text to a target energy",
	Long: `Attune computes a minimal insertion plan moving the input's digital
root to the target and prints the attuned text. --plan-only prints the
plan without applying it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		target, _ := cmd.Flags().GetInt("target")
		symbols, _ := cmd.Flags().GetString("symbols")
		methodStr, _ := cmd.Flags().GetString("method")
		spread, _ := cmd.Flags().GetInt("spread")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		planOnly, _ := cmd.Flags().GetBool("plan-only")
		asJSON, _ := cmd.Flags().GetBool("json")

		plan, err := eng.PlanInsertion(text, target, symbols, maxSteps)
		if err != nil {
			return err
		}

		if planOnly {
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(plan)
			}
			printInsertionPlan(cmd, plan)
			return nil
		}

		attuned, err := eng.ApplyInsertion(text, plan, planner.InsertMethod(methodStr), spread)
		if err != nil {
			return err
		}
		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"text": attuned,
				"plan": plan,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), attuned)
		return nil
	},
}

func printInsertionPlan(cmd *cobra.Command, plan *planner.Plan) {
	styler := newStyler(cmd)
	fmt.Fprintf(cmd.OutOrStdout(), "dr %s -> %s  (total %d -> %d)\n",
		styler.EnergyBadge(plan.RootBefore), styler.EnergyBadge(plan.RootAfter),
		plan.TotalBefore, plan.TotalAfter)
	if plan.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "already attuned, no insertions needed")
		return
	}
	for _, step := range plan.Steps {
		fmt.Fprintf(cmd.OutOrStdout(), "insert %q x%d\n", step.Symbol, step.Count)
	}
}

func init() {
	attuneCmd.Flags().IntP("target", "t", 9, "Target digital root, 1..9")
	attuneCmd.Flags().StringP("symbols", "s", "", "Allowed insertion symbols (default \""+planner.DefaultAllowedSymbols+"\")")
	attuneCmd.Flags().StringP("method", "m", string(planner.MethodAppend), "Placement: append, prepend or intersperse")
	attuneCmd.Flags().Int("spread", 0, "Intersperse interval (0 derives a default)")
	attuneCmd.Flags().Int("max-steps", 0, "Insertion search depth cap (0 uses the default)")
	attuneCmd.Flags().Bool("plan-only", false, "Print the plan without applying it")
	attuneCmd.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	rootCmd.AddCommand(attuneCmd)
}
