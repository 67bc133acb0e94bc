package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/state"
)

var symbolCmd = &cobra.Command{
	Use:   "symbol",
	Short: "Manage named symbols in a ledger",
}

var symbolSetCmd = &cobra.Command{
	Use:   "set <name> <energy>",
	Short: "Set a symbol's energy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		energy, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid energy %q: %w", args[1], err)
		}

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

		if err := ledger.SetSymbol(args[0], energy); err != nil {
			return err
		}
		if err := store.Save(cmd.Context(), id, ledger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[0], energy)
		return nil
	},
}

var symbolGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a symbol's energy",
	Args:  cobra.ExactArgs(1),
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
		energy, ok := ledger.Symbols[args[0]]
		if !ok {
			return fmt.Errorf("unknown symbol: %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", energy)
		return nil
	},
}

var symbolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ledger's symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("ledger")

		ledger, err := store.Load(cmd.Context(), id)
		if errors.Is(err, state.ErrLedgerNotFound) {
			return nil
		} else if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(ledger.Symbols)
		}
		for _, name := range ledger.SymbolNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", name, ledger.Symbols[name])
		}
		return nil
	},
}

var symbolRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a symbol from the ledger",
	Args:  cobra.ExactArgs(1),
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
		if _, ok := ledger.Symbols[args[0]]; !ok {
			return fmt.Errorf("unknown symbol: %q", args[0])
		}
		delete(ledger.Symbols, args[0])
		return store.Save(cmd.Context(), id, ledger)
	},
}

func init() {
	symbolListCmd.Flags().Bool("json", false, "Emit JSON instead of formatted text")
	for _, c := range []*cobra.Command{symbolSetCmd, symbolGetCmd, symbolListCmd, symbolRemoveCmd} {
		addStoreFlags(c)
		symbolCmd.AddCommand(c)
	}
	rootCmd.AddCommand(symbolCmd)
}
