package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/energy"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [text]",
	Short: "Render the energy sigil of text",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		style, _ := cmd.Flags().GetString("style")
		fmt.Fprint(cmd.OutOrStdout(), energy.SynthesizeSigil(text, eng.Principle(), style))
		return nil
	},
}

func init() {
	synthesizeCmd.Flags().String("style", "grid", "Sigil style: grid or bar")
	rootCmd.AddCommand(synthesizeCmd)
}
