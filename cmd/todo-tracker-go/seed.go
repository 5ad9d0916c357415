package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cirocosta/todo-tracker-go/internal/config"
	"github.com/cirocosta/todo-tracker-go/internal/repository"
)

var seedFlags struct {
	configPath string
	dbPath     string
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with sample items",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedFlags.configPath, "config", "", "path to the TOML configuration file")
	seedCmd.Flags().StringVar(&seedFlags.dbPath, "db", "", "SQLite database path (overrides config)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(seedFlags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = seedFlags.dbPath
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("seeding requires a database path, set --db or db_path in the config")
	}

	db, err := repository.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	n, err := repository.Seed(cmd.Context(), repository.NewSQLiteTodoRepository(db))
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "database is not empty, nothing seeded")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d items into %s\n", n, cfg.DBPath)
	return nil
}
