// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048                  - Play a game (same as "t2048 play")
//	t2048 play             - Play a game
//	t2048 scores           - Show the best recorded games
//	t2048 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible games
//	--db <path>       - Set database path (default: ~/.t2048/scores.db)
//	--config <path>   - Use a specific config file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string

	// Loaded in PersistentPreRunE
	appConfig config.Config

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "t2048",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `Slide the tiles with the arrow keys, WASD or hjkl. Equal tiles merge
into their sum. Reach 2048 to win, and keep going for a higher score.

Available commands:
  play     - Play a game (default)
  scores   - View the best recorded games
  serve    - Start SSH server for remote play

Examples:
  t2048
  t2048 play --seed 42
  t2048 scores
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = flagDBPath
	}

	if cfg.Storage.Path, err = config.ExpandHome(cfg.Storage.Path); err != nil {
		return err
	}
	if cfg.Server.HostKeyPath, err = config.ExpandHome(cfg.Server.HostKeyPath); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}
