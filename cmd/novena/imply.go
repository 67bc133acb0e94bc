package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/rules"
	"github.com/ninefold/novena/pkg/state"
)

var implyCmd = &cobra.Command{
	Use:   "imply",
	Short: "Apply energy-conserving fusion and split rules",
}

var implyFuseCmd = &cobra.Command{
	Use:   "fuse <symbol>...",
	Short: "Fuse symbol energies into one output symbol",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		rule, err := rules.MakeFusion("Fuse", out, len(args))
		if err != nil {
			return err
		}
		return runRule(cmd, rule, args)
	},
}

var implySplitCmd = &cobra.Command{
	Use:   "split <symbol>",
	Short: "Split a symbol's energy between two outputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outA, _ := cmd.Flags().GetString("out-a")
		outB, _ := cmd.Flags().GetString("out-b")
		ratio, _ := cmd.Flags().GetFloat64("ratio")
		rule, err := rules.MakeSplit("Split", outA, outB, ratio)
		if err != nil {
			return err
		}
		return runRule(cmd, rule, args)
	},
}

var implyRuleCmd = &cobra.Command{
	Use:   "rule <name> <symbol>...",
	Short: "Apply a named rule stored in the ledger",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("ledger")
		ledger, err := store.Load(cmd.Context(), id)
		if err != nil {
			return err
		}
		rule, ok := ledger.Rules[args[0]]
		if !ok {
			return fmt.Errorf("unknown rule: %q", args[0])
		}
		return runRule(cmd, rule, args[1:])
	},
}

// runRule loads the ledger, applies the rule, persists outputs when
// --commit is set, and prints the outcome.
func runRule(cmd *cobra.Command, rule rules.Rule, inputs []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("ledger")

	ledger, err := store.Load(cmd.Context(), id)
	if errors.Is(err, state.ErrLedgerNotFound) {
		ledger = state.NewLedger()
	} else if err != nil {
		return err
	}

	outcome, err := rules.Apply(rule, ledger.Symbols, inputs)
	if err != nil {
		return err
	}

	if commit, _ := cmd.Flags().GetBool("commit"); commit {
		for _, in := range outcome.Inputs {
			delete(ledger.Symbols, in.Name)
		}
		for _, out := range outcome.Outputs {
			if err := ledger.SetSymbol(out.Name, out.Energy); err != nil {
				return err
			}
		}
		if err := store.Save(cmd.Context(), id, ledger); err != nil {
			return err
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(outcome)
	}
	for _, out := range outcome.Outputs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", out.Name, out.Energy)
	}
	return nil
}

func init() {
	implyFuseCmd.Flags().String("out", "AUTO", "Output symbol name (AUTO concatenates the inputs)")
	implySplitCmd.Flags().String("out-a", "", "First output symbol name")
	implySplitCmd.Flags().String("out-b", "", "Second output symbol name")
	implySplitCmd.Flags().Float64("ratio", 0.5, "Share of energy routed to the first output")
	for _, c := range []*cobra.Command{implyFuseCmd, implySplitCmd, implyRuleCmd} {
		addStoreFlags(c)
		c.Flags().Bool("commit", false, "Persist the outcome back to the ledger")
		c.Flags().Bool("json", false, "Emit JSON instead of formatted text")
		implyCmd.AddCommand(c)
	}
	rootCmd.AddCommand(implyCmd)
}
