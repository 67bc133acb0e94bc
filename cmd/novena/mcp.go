package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/ninefold/novena/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP server over stdio so AI agents can call
analyze_text and attune_text as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		// Keep Stdout clean for JSON-RPC.
		log.SetOutput(os.Stderr)
		logger := newLogger(cmd)
		logger.Info("starting novena MCP server (stdio)")

		srv := mcpAdapter.NewServer(engine)
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
