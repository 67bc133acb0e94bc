package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/internal/presentation"
	"github.com/ninefold/novena/pkg/tokenize"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Split text on energy-derived delimiters and annotate tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		opts := tokenize.Options{}
		opts.Energy, _ = cmd.Flags().GetInt("energy")
		if cmd.Flags().Changed("delims") {
			d, _ := cmd.Flags().GetString("delims")
			opts.Delims = &d
		}
		opts.DropDelims, _ = cmd.Flags().GetBool("drop-delims")
		opts.KeepPadding, _ = cmd.Flags().GetBool("keep-padding")

		toks := eng.Tokenize(text, opts)
		asJSON, _ := cmd.Flags().GetBool("json")

		if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
			delims := ""
			if opts.Delims != nil {
				delims = *opts.Delims
			} else {
				class := opts.Energy
				if class == 0 {
					class = 1
				}
				delims = tokenize.DelimiterSet(eng.Principle(), class, "")
			}
			metrics := tokenize.ComputeMetrics(text, toks, eng.Principle(), delims)
			// Metrics are structured data; there is no table rendering.
			return json.NewEncoder(cmd.OutOrStdout()).Encode(metrics)
		}

		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(toks)
		}

		styler := newStyler(cmd)
		tbl := presentation.NewTable("KIND", "TEXT", "TOTAL", "DR", "DOMINANT")
		for _, tok := range toks {
			tbl.Add(tok.Kind, fmt.Sprintf("%q", tok.Text),
				fmt.Sprintf("%d", tok.Total), styler.EnergyBadge(tok.Root), tok.Dominant)
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
		return nil
	},
}

func init() {
	tokenizeCmd.Flags().Int("energy", 1, "Symbol energy class supplying the delimiter set")
	tokenizeCmd.Flags().String("delims", "", "Explicit delimiter characters, overriding --energy")
	tokenizeCmd.Flags().Bool("drop-delims", false, "Drop delimiter runs instead of emitting them")
	tokenizeCmd.Flags().Bool("keep-padding", false, "Keep surrounding whitespace on content tokens")
	tokenizeCmd.Flags().Bool("metrics", false, "Emit corpus metrics instead of the token list")
	tokenizeCmd.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	rootCmd.AddCommand(tokenizeCmd)
}
