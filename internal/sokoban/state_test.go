package sokoban

import (
	"errors"
	"testing"
)

type recordedSolution struct {
	level *Level
	moves string
}

type fakeRecorder struct {
	calls []recordedSolution
}

func (r *fakeRecorder) RecordSolution(lvl *Level, h History) {
	r.calls = append(r.calls, recordedSolution{level: lvl, moves: h.String()})
}

func TestPushSolvesCorridor(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()
	rec := &fakeRecorder{}
	st.SetRecorder(rec)

	res, ok := st.Move(DirRight, false)
	if !ok {
		t.Fatal("push right was rejected")
	}
	if !res.Has(MovePushed | MoveOnGoal | MoveSolved) {
		t.Errorf("expected pushed+ongoal+solved, got %03b", res)
	}
	if got := st.History().String(); got != "R" {
		t.Errorf("history = %q, want %q", got, "R")
	}
	if st.History().Len() != 1 || st.History().Pushes() != 1 {
		t.Errorf("expected 1 move / 1 push, got %d / %d", st.History().Len(), st.History().Pushes())
	}
	if st.Pos() != C(2, 1) {
		t.Errorf("player at %v, want (2,1)", st.Pos())
	}
	if !st.Solved() {
		t.Error("state should be solved")
	}
	if len(rec.calls) != 1 || rec.calls[0].moves != "R" || rec.calls[0].level != lvl {
		t.Errorf("recorder calls = %+v", rec.calls)
	}

	// The level itself is untouched.
	if !lvl.Cell(2, 1).Has(CellAtom) || lvl.Cell(3, 1).Has(CellAtom) {
		t.Error("move mutated the level grid")
	}
}

func TestMoveRejected(t *testing.T) {
	lvl := mustParse(t, "######\n#@$$.#\n######")
	st := lvl.NewState()
	before := st.Grid()

	tests := []struct {
		name string
		dir  Direction
	}{
		{"wall above", DirUp},
		{"wall below", DirDown},
		{"wall left", DirLeft},
		{"atom behind atom", DirRight},
		{"no direction", DirNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := st.Move(tc.dir, false); ok {
				t.Fatalf("Move(%v) accepted", tc.dir)
			}
			if !st.Grid().Equal(before) || st.Pos() != lvl.Start || !st.History().Empty() {
				t.Error("rejected move mutated the state")
			}
		})
	}
}

func TestMoveGridEdge(t *testing.T) {
	tests := []struct {
		name  string
		level string
		moves []Direction
		last  Direction
		ok    bool
	}{
		// Open level without surrounding walls on the top row.
		{"up from row 0", " @ \n#$#\n#.#\n###", nil, DirUp, false},
		{"along row 0", " @ \n#$#\n#.#\n###", nil, DirLeft, true},
		{"push atom off the edge", "####\n#@ $\n####", []Direction{DirRight}, DirRight, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustParse(t, tt.level).NewState()
			for _, d := range tt.moves {
				if _, ok := st.Move(d, false); !ok {
					t.Fatalf("setup move %v rejected", d)
				}
			}
			before := st.Pos()
			_, ok := st.Move(tt.last, false)
			if ok != tt.ok {
				t.Fatalf("Move(%v) ok = %v, want %v", tt.last, ok, tt.ok)
			}
			if !ok && st.Pos() != before {
				t.Errorf("rejected move changed position to %v", st.Pos())
			}
		})
	}
}

func TestMoveAngle(t *testing.T) {
	lvl := mustParse(t, "#####\n#   #\n# @ #\n#   #\n#####")
	st := lvl.NewState()

	tests := []struct {
		dir   Direction
		angle int
	}{
		{DirRight, 90},
		{DirDown, 180},
		{DirLeft, 270},
		{DirUp, 0},
		{DirNone, 0},
	}
	for _, tc := range tests {
		st.Move(tc.dir, false)
		if st.Angle() != tc.angle {
			t.Errorf("after %v angle = %d, want %d", tc.dir, st.Angle(), tc.angle)
		}
	}
}

func TestValidityCheckDoesNotMutate(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()
	st.SetRecorder(&fakeRecorder{})

	res, ok := st.Move(DirRight, true)
	if !ok {
		t.Fatal("validity check rejected a legal push")
	}
	if !res.Has(MovePushed|MoveOnGoal) || res.Has(MoveSolved) {
		t.Errorf("unexpected flags %03b", res)
	}
	if st.Pos() != lvl.Start || !st.History().Empty() || !st.Grid().Equal(lvl.Grid()) {
		t.Error("validity check mutated the state")
	}
}

func TestUndoInverse(t *testing.T) {
	lvl := mustParse(t, "#######\n#     #\n# .$. #\n# $@$ #\n# .$. #\n#     #\n#######")

	for _, dir := range []Direction{DirUp, DirLeft, DirDown, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			st := lvl.NewState()
			st.Move(DirUp, false)
			st.Undo()

			grid, pos, hist := st.Grid(), st.Pos(), st.History()
			if _, ok := st.Move(dir, false); !ok {
				t.Fatalf("Move(%v) rejected", dir)
			}
			st.Undo()

			if !st.Grid().Equal(grid) {
				t.Error("undo did not restore the grid")
			}
			if st.Pos() != pos {
				t.Errorf("undo restored position %v, want %v", st.Pos(), pos)
			}
			if !st.History().Equal(hist) {
				t.Errorf("undo left history %q", st.History())
			}
		})
	}
}

func TestUndoPlainMoveAndEmpty(t *testing.T) {
	lvl := mustParse(t, "######\n#@ $.#\n######")
	st := lvl.NewState()

	st.Undo() // no-op
	if st.Pos() != lvl.Start {
		t.Fatal("undo on empty history moved the player")
	}

	st.Move(DirRight, false)
	st.Move(DirRight, false)
	if st.History().String() != "rR" {
		t.Fatalf("history = %q, want rR", st.History())
	}
	st.Undo()
	st.Undo()
	if !st.Grid().Equal(lvl.Grid()) || st.Pos() != lvl.Start || !st.History().Empty() {
		t.Error("two undos did not restore the initial state")
	}
}

func TestPresolvedNotSolvedUntilPush(t *testing.T) {
	lvl := mustParse(t, "#####\n#@ *#\n#####")
	st := lvl.NewState()
	if st.Solved() {
		t.Error("pre-solved level reported solved before any move")
	}
	res, ok := st.Move(DirRight, false)
	if !ok || res.Has(MoveSolved) {
		t.Errorf("plain move on pre-solved level: ok=%v flags=%03b", ok, res)
	}
	if st.Solved() {
		t.Error("pre-solved level reported solved without a push")
	}
}

func TestNoPushAfterSolved(t *testing.T) {
	lvl := mustParse(t, "########\n#@$.   #\n#  $.  #\n########")
	st := lvl.NewState()
	rec := &fakeRecorder{}
	st.SetRecorder(rec)

	if _, ok := st.Move(DirRight, false); !ok {
		t.Fatal("first push rejected")
	}
	if st.Solved() {
		t.Fatal("solved with one goal still open")
	}
	if err := st.Replay("dr"); err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !st.Solved() {
		t.Fatalf("expected solved, board:\n%s", st)
	}
	if got := st.History().String(); got != "RdR" {
		t.Fatalf("history = %q, want RdR", got)
	}

	// The atom on (4,2) has free floor behind it.
	if _, ok := st.Move(DirRight, false); ok {
		t.Error("pushed an atom after the level was solved")
	}
	if _, ok := st.Move(DirLeft, false); !ok {
		t.Error("plain move rejected after the level was solved")
	}
	if len(rec.calls) != 1 {
		t.Errorf("recorder called %d times, want 1", len(rec.calls))
	}
}

func TestReplayInvalidCharacter(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()

	err := st.Replay("rx")
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Replay() error = %v, want ErrInvalidMove", err)
	}
	if !st.History().Empty() {
		t.Error("invalid replay string applied some moves")
	}
}

func TestReplayCaseInsensitive(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()
	if err := st.Replay("r"); err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if st.History().String() != "R" {
		t.Errorf("history = %q, want R", st.History())
	}
}

func TestReset(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()
	st.Move(DirRight, false)
	st.Reset()
	if !st.Grid().Equal(lvl.Grid()) || st.Pos() != lvl.Start || !st.History().Empty() || st.Angle() != 0 {
		t.Error("Reset() did not restore the initial state")
	}
}
