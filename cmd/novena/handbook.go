package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/internal/presentation"
)

var handbookCmd = &cobra.Command{
	Use:   "handbook",
	Short: "Read the built-in handbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		out, err := presentation.Handbook(noColor, presentation.Width(100))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(handbookCmd)
}
