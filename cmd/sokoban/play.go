package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

var (
	flagMoves  string
	flagResume bool
	flagSave   bool
	flagUndo   int
)

var playCmd = &cobra.Command{
	Use:   "play <file> [level]",
	Short: "Play moves on a level",
	Long: `Apply a sequence of moves to a level and print the resulting board.

Moves use the XSB alphabet: u, l, d, r (uppercase letters are accepted
too; whether a move pushes is decided by the board). A decimal prefix
repeats a move, e.g. "3r2u". Without a level number the first unsolved
level of the set is played.

When the moves solve the level, the solution is compared with the best
known one and saved if it is shorter (fewer moves, then fewer pushes).

Examples:
  sokoban play microban.xsb
  sokoban play microban.xsb 3 --moves "3r2U"
  sokoban play microban.xsb 3 --moves "ll" --save
  sokoban play microban.xsb 3 --resume --moves "dR" --undo 1`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Start from the saved session of the level")
	playCmd.Flags().BoolVar(&flagSave, "save", false, "Save the session after playing")
	playCmd.Flags().IntVar(&flagUndo, "undo", 0, "Number of moves to undo after playing")
}

// levelArg picks the level named by args[1], or the first unsolved one.
func levelArg(set *levels.Set, args []string) (*sokoban.Level, error) {
	number := set.FirstUnsolved() + 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid level number %q", args[1])
		}
		number = n
	}
	lvl := set.Level(number)
	if lvl == nil {
		return nil, fmt.Errorf("level %d out of range (1-%d)", number, set.Len())
	}
	return lvl, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	a := mustApp()
	defer a.Close()

	set := a.loadSet(args[0])
	lvl, err := levelArg(set, args)
	if err != nil {
		a.fail("%v", err)
	}
	lastLeft := set.LastLeft(lvl.Number - 1)

	st := lvl.NewState()
	st.SetRecorder(a.book)

	if flagResume {
		saved := a.book.LoadProgress(lvl)
		st.ReplayHistory(saved)
		a.logger.Debug("session resumed", "level", lvl.Number, "moves", saved.Len())
	}

	wasSolved := st.Solved()
	if flagMoves != "" {
		moves, err := sokoban.ParseHistory(flagMoves)
		if err != nil {
			a.fail("%v", err)
		}
		for i, step := range moves.Steps() {
			if _, ok := st.Move(step.Dir, false); !ok {
				fmt.Println(paint(dimStyle, fmt.Sprintf("move %d (%s) blocked", i+1, step.Dir)))
			}
		}
	}
	for i := 0; i < flagUndo; i++ {
		st.Undo()
	}

	fmt.Printf("%s %d", paint(headerStyle, "Level"), lvl.Number)
	if lvl.Comment != "" {
		fmt.Printf(" - %s", lvl.Comment)
	}
	fmt.Println()
	fmt.Println()
	fmt.Print(paintBoard(st.String()))
	fmt.Println()

	hist := st.History()
	fmt.Printf("Moves: %d  Pushes: %d\n", hist.Len(), hist.Pushes())
	if !hist.Empty() {
		fmt.Printf("History: %s\n", hist)
	}

	if flagSave {
		if err := a.book.SaveProgress(lvl, hist); err != nil {
			a.fail("saving session: %v", err)
		}
		fmt.Println(paint(dimStyle, "Session saved."))
	}

	if !st.Solved() {
		return
	}
	fmt.Println()
	fmt.Println(paint(solvedStyle, "Level solved!"))
	if wasSolved {
		return
	}
	switch {
	case lvl.Solution.Empty():
		fmt.Println(paint(errorStyle, "The solution could not be saved."))
	case lvl.Solution.Equal(hist):
		fmt.Println("New best solution saved.")
	default:
		fmt.Printf("Best known solution: %d moves, %d pushes.\n", lvl.Solution.Len(), lvl.Solution.Pushes())
	}
	if lastLeft {
		fmt.Println(paint(solvedStyle, "That was the last unsolved level of the set!"))
	}
}
