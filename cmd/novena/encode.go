package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/energy"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Annotate text with per-character energies",
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
		switch style {
		case "annotate":
			fmt.Fprintln(cmd.OutOrStdout(), energy.Annotate(text, eng.Principle()))
			return nil
		case "json":
			data, err := json.MarshalIndent(eng.Analyze(text), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		default:
			return fmt.Errorf("unknown encode style %q", style)
		}
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Strip energy annotations from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), energy.StripAnnotations(text))
		return nil
	},
}

func init() {
	encodeCmd.Flags().String("style", "annotate", "Encode style: annotate or json")
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
