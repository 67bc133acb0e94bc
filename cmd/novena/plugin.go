package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/plugin"
	"github.com/ninefold/novena/pkg/state"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Discover, enable and disable rule-pack plugins",
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discoverable plugins and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("ledger")

		enabled := map[string]bool{}
		if ledger, err := store.Load(cmd.Context(), id); err == nil {
			for _, name := range ledger.Plugins {
				enabled[name] = true
			}
		}

		for _, name := range plugin.List() {
			status := " "
			if enabled[name] {
				status = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status, name)
		}
		return nil
	},
}

var pluginShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a plugin's definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := plugin.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", def.Name, def.Version, def.Description)
		if len(def.SymbolEnergy) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "symbol energies: %d\n", len(def.SymbolEnergy))
		}
		if len(def.Symbols) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "named symbols: %d\n", len(def.Symbols))
		}
		if len(def.Rules) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "rules: %d\n", len(def.Rules))
		}
		return nil
	},
}

var pluginEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a plugin in the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := plugin.Load(args[0])
		if err != nil {
			return err
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

		if err := plugin.ApplyToLedger(def, ledger); err != nil {
			return err
		}
		if err := store.Save(cmd.Context(), id, ledger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "enabled %s %s\n", def.Name, def.Version)
		return nil
	},
}

var pluginDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a plugin in the ledger",
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
		ledger.DisablePlugin(args[0])
		if err := store.Save(cmd.Context(), id, ledger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "disabled %s\n", args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{pluginListCmd, pluginEnableCmd, pluginDisableCmd} {
		addStoreFlags(c)
	}
	pluginCmd.AddCommand(pluginListCmd, pluginShowCmd, pluginEnableCmd, pluginDisableCmd)
	rootCmd.AddCommand(pluginCmd)
}
