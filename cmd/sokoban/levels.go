package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <file>",
	Short: "List the levels of a set",
	Long: `Shows every level of a set with its id, size and best known solution.

Examples:
  sokoban levels microban.xsb
  sokoban levels original.sok.gz`,
	Args: cobra.ExactArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.Close()

	set := a.loadSet(args[0])

	fmt.Println(paint(headerStyle, set.Name))
	if set.Description != "" {
		fmt.Println(paint(dimStyle, set.Description))
	}
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-15s  %s\n", "No.", "ID", "Size", "Best", "Comment")
	fmt.Printf("  %-4s  %-16s  %-7s  %-15s  %s\n", "---", "--", "----", "----", "-------")

	playable := set.Playable()
	for i, lvl := range set.Levels {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		best := fmt.Sprintf("%-15s", "-")
		if lvl.Solved() {
			best = paint(solvedStyle, fmt.Sprintf("%-15s", fmt.Sprintf("%d/%d", lvl.Solution.Len(), lvl.Solution.Pushes())))
		} else if i < playable {
			best = paint(unsolvedStyle, fmt.Sprintf("%-15s", "open"))
		}
		fmt.Printf("  %-4d  %-16s  %-7s  %s  %s\n", lvl.Number, lvl.ID(), size, best, lvl.Comment)
	}

	fmt.Println()
	fmt.Printf("Solved %d of %d levels.\n", set.SolvedCount(), set.Len())
	if set.SolvedCount() < set.Len() {
		fmt.Printf("Run 'sokoban play %s %d' to continue.\n", args[0], set.FirstUnsolved()+1)
	}
}
