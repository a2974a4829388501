// sokoban is a command-line harness for the Sokoban engine: it loads level
// sets, replays moves, and manages solutions and settings.
//
// Usage:
//
//	sokoban levels <file>              - List the levels of a set
//	sokoban play <file> [level]        - Play moves on a level
//	sokoban solution <file> <level>    - Show or export the best solution
//	sokoban sets [dir]                 - List level sets in a directory
//	sokoban skin [name]                - Show or select the skin
//
// Global flags:
//
//	--config <path>         - Use a specific config file
//	--db <path>             - Set database path (sqlite backends)
//	--solutions-dir <path>  - Override the solutions directory
//	--debug                 - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig       string
	flagDBPath       string
	flagSolutionsDir string
	flagDebug        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push atoms onto goals from your terminal",
	Long: `Sokoban loads XSB level sets (plain or gzip-compressed), plays moves
against them and keeps the best solution of every level.

Available commands:
  levels    - List the levels of a set
  play      - Play moves on a level
  solution  - Show or export the best solution of a level
  sets      - List level sets in a directory
  skin      - Show or select the skin

Examples:
  sokoban levels microban.xsb
  sokoban play microban.xsb 3 --moves "3r2U"
  sokoban solution microban.xsb 3 --export
  sokoban sets ./levels
  sokoban skin yoshi`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSolutionsDir, "solutions-dir", "", "Solutions directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solutionCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(skinCmd)
}
