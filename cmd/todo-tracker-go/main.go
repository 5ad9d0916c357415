// Package main implements the todo-tracker-go CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "todo-tracker-go",
	Short:        "Task tracking API with filtering, sorting, and paging",
	SilenceUsage: true,
}
