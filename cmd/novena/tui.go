package main

import (
	"github.com/spf13/cobra"

	"github.com/ninefold/novena/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive attunement workbench",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		return tui.Run(engine)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
