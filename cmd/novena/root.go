package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	novena "github.com/ninefold/novena"
	"github.com/ninefold/novena/internal/adapters/file"
	"github.com/ninefold/novena/internal/adapters/redis"
	"github.com/ninefold/novena/internal/logging"
	"github.com/ninefold/novena/internal/presentation"
	"github.com/ninefold/novena/pkg/plugin"
	"github.com/ninefold/novena/pkg/ports"
	"github.com/ninefold/novena/pkg/principle"
)

var rootCmd = &cobra.Command{
	Use:   "novena",
	Short: "Novena scores and attunes the ninefold energy of text",
	Long: `Novena maps every character to an energy 1..9, scores text by
digital-root arithmetic, and plans minimal edits that move a text's
energy to a chosen target.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("principle", "", "Path to a principle file (JSON or YAML)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("plugins", true, "Apply plugins enabled in the default ledger")
}

// newLogger builds the logger honoring --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// loadPrinciple resolves --principle and layers enabled plugin overlays
// on top.
func loadPrinciple(cmd *cobra.Command) (*principle.Principle, error) {
	path, _ := cmd.Flags().GetString("principle")
	p, err := principle.Load(path)
	if err != nil {
		return nil, err
	}

	if usePlugins, _ := cmd.Flags().GetBool("plugins"); usePlugins {
		store := file.New("")
		ledger, err := store.Load(cmd.Context(), "default")
		if err == nil {
			if overlaid, err := plugin.ActivateAll(ledger, p); err == nil {
				p = overlaid
			} else {
				newLogger(cmd).Warn("skipping plugin overlays", "error", err)
			}
		}
	}
	return p, nil
}

// buildEngine assembles the engine from the persistent flags.
func buildEngine(cmd *cobra.Command) (*novena.Engine, error) {
	p, err := loadPrinciple(cmd)
	if err != nil {
		return nil, err
	}
	return novena.New(
		novena.WithPrinciple(p),
		novena.WithLogger(newLogger(cmd)),
	), nil
}

func newStyler(cmd *cobra.Command) *presentation.Styler {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return presentation.NewStyler(noColor)
}

// readText resolves the input text: joined arguments when present,
// otherwise stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// openStore picks the ledger store from command flags.
func openStore(cmd *cobra.Command) (ports.LedgerStore, error) {
	backend, _ := cmd.Flags().GetString("store")
	switch backend {
	case "", "file":
		path, _ := cmd.Flags().GetString("store-path")
		return file.New(path), nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		return redis.New(addr, "", 0), nil
	}
	return nil, fmt.Errorf("unknown store backend %q (supported: file, redis)", backend)
}

// addStoreFlags registers the ledger store flags on commands that touch
// persistent state.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("store", "file", "Ledger store backend: file or redis")
	cmd.Flags().String("store-path", "", "Base directory for the file store (default ~/.novena/ledgers)")
	cmd.Flags().String("redis-addr", "localhost:6379", "Redis address for the redis store")
	cmd.Flags().String("ledger", "default", "Ledger ID to operate on")
}
