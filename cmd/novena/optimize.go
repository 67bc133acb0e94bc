package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/planner"
	"github.com/ninefold/novena/pkg/subs"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [text]",
	Short: "Plan minimal in-place edits moving the text to a target energy",
	Long: `Optimize searches substitutions (from a substitution profile or case
flips) and optional deletions for the cheapest way to reach the target
digital root, falling back to insertions when in-place edits cannot
bridge the gap.`,
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
		subsPath, _ := cmd.Flags().GetString("subs-file")
		allowDeletion, _ := cmd.Flags().GetBool("allow-deletion")
		maxEdits, _ := cmd.Flags().GetInt("max-edits")
		apply, _ := cmd.Flags().GetBool("apply")
		asJSON, _ := cmd.Flags().GetBool("json")

		var profile *subs.Profile
		if subsPath != "" {
			profile, err = subs.LoadProfile(subsPath)
			if err != nil {
				return err
			}
		} else if generate, _ := cmd.Flags().GetBool("auto-subs"); generate {
			profile = subs.BuildProfile(eng.Principle(), subs.DefaultLimit)
		}

		plan, err := eng.PlanEdit(text, target, profile, allowDeletion, maxEdits)
		if err != nil {
			return err
		}

		if !apply {
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(plan)
			}
			printEditPlan(cmd, plan)
			return nil
		}

		attuned, err := eng.ApplyEdit(text, plan)
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

func printEditPlan(cmd *cobra.Command, plan *planner.EditPlan) {
	styler := newStyler(cmd)
	fmt.Fprintf(cmd.OutOrStdout(), "dr %s -> %s  (total %d -> %d)\n",
		styler.EnergyBadge(plan.RootBefore), styler.EnergyBadge(plan.RootAfter),
		plan.TotalBefore, plan.TotalAfter)
	if plan.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "already attuned, no edits needed")
		return
	}
	for _, op := range plan.Ops {
		switch op.Kind {
		case planner.OpSubstitute:
			fmt.Fprintf(cmd.OutOrStdout(), "substitute pos %d -> %q\n", op.Pos, op.Char)
		case planner.OpDelete:
			fmt.Fprintf(cmd.OutOrStdout(), "delete pos %d\n", op.Pos)
		case planner.OpInsert:
			count := op.Count
			if count < 1 {
				count = 1
			}
			fmt.Fprintf(cmd.OutOrStdout(), "insert %q x%d at pos %d\n", op.Char, count, op.Pos)
		}
	}
}

func init() {
	optimizeCmd.Flags().IntP("target", "t", 9, "Target digital root, 1..9")
	optimizeCmd.Flags().String("subs-file", "", "Path to a substitution profile (JSON)")
	optimizeCmd.Flags().Bool("auto-subs", false, "Generate a substitution catalog from the principle")
	optimizeCmd.Flags().Bool("allow-deletion", false, "Allow character deletions")
	optimizeCmd.Flags().Int("max-edits", 0, "Edit budget (0 uses the default)")
	optimizeCmd.Flags().Bool("apply", false, "Apply the plan and print the attuned text")
	optimizeCmd.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	rootCmd.AddCommand(optimizeCmd)
}
