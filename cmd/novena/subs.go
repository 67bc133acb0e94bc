package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/subs"
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage substitution profiles for the edit planner",
}

var subsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a substitution profile from the active principle",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPrinciple(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		profile := subs.BuildProfile(p, limit)
		data, err := subs.MarshalProfile(profile)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	subsGenerateCmd.Flags().Int("limit", subs.DefaultLimit, "Max candidates per character")
	subsGenerateCmd.Flags().StringP("out", "o", "", "Output path (stdout when omitted)")
	subsCmd.AddCommand(subsGenerateCmd)
	rootCmd.AddCommand(subsCmd)
}
