// flappy is a side-scrolling flyer for the terminal, a desktop window or SSH.
//
// Usage:
//
//	flappy                   - Pick a difficulty and play in the terminal
//	flappy play              - Play in the terminal right away
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores [player]   - Show the best runs
//	flappy presets           - List difficulty presets
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Seed every run the same way (default: random per run)
//	--db <path>           - Set database path (default: ~/.flappy/runs.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly between the pipes in your terminal",
	Long: `Flappy is a side-scrolling flyer. Flap to stay in the air, slip through
the gaps, collect stars and power-ups and dodge the bombs.

Without a subcommand a difficulty menu opens in the terminal. After each
game you return to the menu; Tab opens the scoreboard.

Examples:
  flappy
  flappy play --difficulty hard
  flappy window
  flappy serve --ssh :2222
  flappy scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for every run (0 = random per run)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
