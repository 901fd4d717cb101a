package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSample bool
	flagYes    bool
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the score database",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the score tables",
	Long: `Create the players and scores tables if they do not exist.
With --sample, also (re)create the demo player "test_player" with a
fixed set of scores.

Examples:
  snake db init
  snake db init --sample --db-driver mysql`,
	Args: cobra.NoArgs,
	Run:  runDBInit,
}

var dbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded score",
	Long:  `Delete every score record. Registered players are kept.`,
	Args:  cobra.NoArgs,
	Run:   runDBClear,
}

func init() {
	dbInitCmd.Flags().BoolVar(&flagSample, "sample", false, "Insert sample scores")
	dbClearCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deleting all scores")

	dbCmd.AddCommand(dbInitCmd)
	dbCmd.AddCommand(dbClearCmd)
}

// openSQLStore opens the configured store and requires a SQL backend.
func openSQLStore(ctx context.Context) (*storage.SQLStore, func()) {
	cfg, err := loadSettings()
	if err != nil {
		exitf("%v", err)
	}
	if cfg.Storage.Driver == storage.DriverMemory {
		exitf("the memory driver keeps no database; choose sqlite or mysql")
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	sqlStore, ok := store.(*storage.SQLStore)
	if !ok {
		store.Close()
		exitf("driver %q is not SQL-backed", cfg.Storage.Driver)
	}
	return sqlStore, func() {
		//nolint:errcheck // Best-effort close
		sqlStore.Close()
	}
}

func runDBInit(cmd *cobra.Command, _ []string) {
	store, closeStore := openSQLStore(cmd.Context())
	defer closeStore()

	if err := store.Migrate(cmd.Context()); err != nil {
		closeStore()
		exitf("migrating: %v", err)
	}
	fmt.Printf("Score tables ready (%s)\n", store.Driver())

	if !flagSample {
		return
	}
	if err := store.SeedSample(cmd.Context()); err != nil {
		closeStore()
		exitf("inserting sample data: %v", err)
	}
	fmt.Printf("Sample scores inserted for %q\n", storage.SampleUsername)
}

func runDBClear(cmd *cobra.Command, _ []string) {
	if !flagYes {
		exitf("refusing to delete scores without --yes")
	}

	store, closeStore := openSQLStore(cmd.Context())
	defer closeStore()

	if err := store.ClearScores(cmd.Context()); err != nil {
		closeStore()
		exitf("clearing scores: %v", err)
	}
	fmt.Println("All scores deleted")
}
