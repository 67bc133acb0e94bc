package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/internal/presentation"
	"github.com/ninefold/novena/pkg/energy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Compute the ninefold energy of text",
	Long: `Analyze reports the total energy and digital root of the input, with
optional word/sentence/paragraph breakdowns, class vectors and harmonic
triads. Reads stdin when no text argument is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		detail, _ := cmd.Flags().GetBool("detail")
		vector, _ := cmd.Flags().GetBool("vector")
		harmonics, _ := cmd.Flags().GetBool("harmonics")

		if asJSON {
			payload := map[string]any{}
			analysis := eng.Analyze(text)
			if detail {
				payload["analysis"] = analysis
			} else {
				payload["document"] = analysis.Document
			}
			if vector {
				payload["vector"] = energy.VectorEnergy(text, eng.Principle())
			}
			if harmonics {
				payload["triads"] = energy.HarmonicTriads(text, eng.Principle())
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
		}

		styler := newStyler(cmd)
		total, root := eng.Checksum(text)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s  total %d\n",
			styler.Bold("dr"), styler.EnergyBadge(root), total)

		if detail {
			analysis := eng.Analyze(text)
			tbl := presentation.NewTable("WORD", "TOTAL", "DR")
			for _, w := range analysis.Words {
				tbl.Add(w.Value, fmt.Sprintf("%d", w.Total), styler.EnergyBadge(w.Energy))
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
		}
		if vector {
			v := energy.VectorEnergy(text, eng.Principle())
			fmt.Fprintf(cmd.OutOrStdout(), "vector letters=%d digits=%d symbols=%d\n",
				v.Sum["letters"], v.Sum["digits"], v.Sum["symbols"])
		}
		if harmonics {
			triads := energy.HarmonicTriads(text, eng.Principle())
			fmt.Fprintf(cmd.OutOrStdout(), "triads root=%d wave=%d peak=%d\n",
				triads["root"], triads["wave"], triads["peak"])
		}
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile [text]",
	Short: "Histogram of character energies 1..9",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		hist := energy.Profile(text, eng.Principle())
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(hist)
		}

		styler := newStyler(cmd)
		for e := 1; e <= 9; e++ {
			bar := ""
			for i := 0; i < hist[e] && i < 40; i++ {
				bar += "#"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %3d %s\n", styler.EnergyBadge(e), hist[e], styler.Energy(bar, e))
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <text-a> <text-b>",
	Short: "Compare the energies of two texts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		totalA, rootA := eng.Checksum(args[0])
		totalB, rootB := eng.Checksum(args[1])

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"a":        map[string]int{"total": totalA, "dr": rootA},
				"b":        map[string]int{"total": totalB, "dr": rootB},
				"resonant": rootA == rootB,
			})
		}

		styler := newStyler(cmd)
		fmt.Fprintf(cmd.OutOrStdout(), "a: dr %s total %d\n", styler.EnergyBadge(rootA), totalA)
		fmt.Fprintf(cmd.OutOrStdout(), "b: dr %s total %d\n", styler.EnergyBadge(rootB), totalB)
		if rootA == rootB {
			fmt.Fprintln(cmd.OutOrStdout(), "the texts are resonant")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "the texts differ by %d\n", absInt(rootA-rootB))
		}
		return nil
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign [text]",
	Short: "Per-character energy assignment table",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}

		type assignment struct {
			Char   string `json:"char"`
			Energy int    `json:"energy"`
			Count  int    `json:"count"`
		}
		counts := map[rune]int{}
		var order []rune
		for _, r := range text {
			if counts[r] == 0 {
				order = append(order, r)
			}
			counts[r]++
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

		var rows []assignment
		for _, r := range order {
			rows = append(rows, assignment{Char: string(r), Energy: energy.CharEnergy(r, eng.Principle()), Count: counts[r]})
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
		}

		styler := newStyler(cmd)
		tbl := presentation.NewTable("CHAR", "ENERGY", "COUNT")
		for _, row := range rows {
			tbl.Add(fmt.Sprintf("%q", row.Char), styler.EnergyBadge(row.Energy), fmt.Sprintf("%d", row.Count))
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
		return nil
	},
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, profileCmd, compareCmd, assignCmd} {
		c.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	}
	analyzeCmd.Flags().Bool("detail", false, "Include the word-level breakdown")
	analyzeCmd.Flags().Bool("vector", false, "Include class energy sums")
	analyzeCmd.Flags().Bool("harmonics", false, "Include harmonic triad counts")
	rootCmd.AddCommand(analyzeCmd, profileCmd, compareCmd, assignCmd)
}
