package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	novena "github.com/ninefold/novena"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of novena",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("novena version %s\n", strings.TrimSpace(novena.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
