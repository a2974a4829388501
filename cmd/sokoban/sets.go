package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var setsCmd = &cobra.Command{
	Use:   "sets [dir]",
	Short: "List level sets in a directory",
	Long: `Scans a directory for level sets (.xsb, .txt, .sok, optionally .gz) and
shows how many levels of each are solved. Without an argument the
configured levels directory is scanned.

Examples:
  sokoban sets
  sokoban sets ~/sokoban/levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSets,
}

func runSets(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.Close()

	root := a.cfg.Levels.Dir
	if len(args) > 0 {
		root = args[0]
	}

	entries, err := levels.Catalog(root)
	if err != nil {
		a.fail("%v", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No level sets found in %s.\n", root)
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Solved", "Path")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "------", "----")

	for _, e := range entries {
		set, err := a.loader.LoadFile(e.Path)
		if err != nil {
			a.logger.Warn("skipping level set", "path", e.Path, "error", err)
			fmt.Printf("  %-*s  %s  %s\n", maxNameLen, e.Name, paint(errorStyle, fmt.Sprintf("%-9s", "error")), e.Path)
			continue
		}

		progress := fmt.Sprintf("%-9s", fmt.Sprintf("%d/%d", set.SolvedCount(), set.Len()))
		style := unsolvedStyle
		if set.SolvedCount() == set.Len() {
			style = solvedStyle
		}
		fmt.Printf("  %-*s  %s  %s\n", maxNameLen, e.Name, paint(style, progress), e.Path)
	}
}
