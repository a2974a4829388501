package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

var (
	flagExport bool
	flagSubmit string
)

var solutionCmd = &cobra.Command{
	Use:   "solution <file> [level]",
	Short: "Show or export the best solution of a level",
	Long: `Display the best known solution of a level, export the level with its
solution in XSB format, or submit a solution found elsewhere.

A submitted solution is replayed on the level; it is kept only if it
solves the level and beats the stored one.

Examples:
  sokoban solution microban.xsb 3
  sokoban solution microban.xsb 3 --export > level3.xsb
  sokoban solution microban.xsb 3 --submit "rrUUlD"`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runSolution,
}

func init() {
	solutionCmd.Flags().BoolVar(&flagExport, "export", false, "Print the level and its solution in XSB format")
	solutionCmd.Flags().StringVar(&flagSubmit, "submit", "", "Replay and record a solution")
}

func runSolution(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.Close()

	set := a.loadSet(args[0])
	lvl, err := levelArg(set, args)
	if err != nil {
		a.fail("%v", err)
	}

	if flagSubmit != "" {
		submitSolution(a, lvl)
		return
	}

	if flagExport {
		fmt.Print(lvl.XSB(lvl.Solution))
		return
	}

	fmt.Printf("%s %d [%s]\n", paint(headerStyle, "Level"), lvl.Number, lvl.ID())
	fmt.Println()
	if !lvl.Solved() {
		fmt.Println(paint(unsolvedStyle, "No solution recorded yet."))
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s %d' to solve it!\n", args[0], lvl.Number)
	} else {
		fmt.Printf("Moves: %d  Pushes: %d\n", lvl.Solution.Len(), lvl.Solution.Pushes())
		fmt.Println(lvl.Solution)
	}

	// Completion log is only kept by the sqlite backend
	if a.store == nil {
		return
	}
	stats, err := a.store.Stats(lvl.CRC64)
	if err != nil {
		a.logger.Error("cannot read completion log", "error", err)
		return
	}
	if stats != nil {
		fmt.Println()
		fmt.Printf("Solved %d times, best %d/%d, last on %s\n",
			stats.Attempts, stats.BestMoves, stats.BestPushes, stats.LastSolved.Format("2006-01-02 15:04"))
	}
}

func submitSolution(a *app, lvl *sokoban.Level) {
	moves, err := sokoban.ParseHistory(flagSubmit)
	if err != nil {
		a.fail("%v", err)
	}

	st := lvl.NewState()
	st.ReplayHistory(moves)
	if !st.Solved() {
		a.fail("the submitted moves do not solve level %d", lvl.Number)
	}

	// Record the history actually played: blocked moves are dropped and
	// push flags come from the board.
	played := st.History()
	saved, err := a.book.Record(lvl, played)
	if err != nil {
		a.fail("%v", err)
	}
	if saved {
		fmt.Printf("%s %d moves, %d pushes.\n", paint(solvedStyle, "Solution saved:"), played.Len(), played.Pushes())
		return
	}
	fmt.Printf("Kept the stored solution (%d moves, %d pushes).\n", lvl.Solution.Len(), lvl.Solution.Pushes())
}
