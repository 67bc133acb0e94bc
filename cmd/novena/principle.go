package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/internal/presentation"
	"github.com/ninefold/novena/pkg/principle"
)

var principleCmd = &cobra.Command{
	Use:   "principle",
	Short: "Inspect and validate principle files",
}

var principleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active principle",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPrinciple(cmd)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(p)
		}

		styler := newStyler(cmd)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n", styler.Bold(p.Name), p.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "letter mode %s, zero to nine %v, harmonics %v\n\n",
			p.LetterMode, p.ZeroToNine, p.Harmonics)

		tbl := presentation.NewTable("SYMBOL", "ENERGY")
		for _, r := range p.Symbols() {
			tbl.Add(fmt.Sprintf("%q", string(r)), styler.EnergyBadge(p.SymbolEnergy[string(r)]))
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
		return nil
	},
}

var principleValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a principle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := principle.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d symbols)\n", p.Name, len(p.SymbolEnergy))
		return nil
	},
}

func init() {
	principleShowCmd.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	principleCmd.AddCommand(principleShowCmd, principleValidateCmd)
	rootCmd.AddCommand(principleCmd)
}
