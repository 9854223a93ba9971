package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck [pdf]",
	Short: "Turn PDFs into flashcard study sessions",
	Long:  "Flashdeck reads a PDF, generates flashcards from its text, and runs a timed flip-card study session in your terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startPDF := ""
		if len(args) == 1 {
			startPDF = args[0]
		}
		return runApp(cmd, startPDF)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FLASHDECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, falling back to the
// default location. A missing file yields the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then FLASHDECK_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves configuration and opens the session store. Shared by
// the root command and the data subcommands.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}
