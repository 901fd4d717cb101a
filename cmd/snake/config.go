package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the settings after files, the dotenv file, the environment and
flags have been applied. The database password is masked.

Examples:
  snake config
  snake config --difficulty hard --db-driver memory`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadSettings()
	if err != nil {
		exitf("%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("# source: %s\n", cfg.Source)
	fmt.Print(string(out))
}
