package sokoban

import (
	"strings"
	"testing"
)

func TestXSBRoundTrip(t *testing.T) {
	levels := []string{
		corridor,
		"  #####\n###   #\n#+$ * #\n#######",
		"#######\n#     #\n# .$. #\n# $@$ #\n# .$. #\n#     #\n#######",
	}
	for _, text := range levels {
		lvl := mustParse(t, text)
		out := lvl.XSB(History{})

		again := mustParse(t, out)
		if again.CRC64 != lvl.CRC64 {
			t.Errorf("round trip changed id %s -> %s\n%s", lvl.ID(), again.ID(), out)
		}
		if again.Width != lvl.Width || again.Height != lvl.Height {
			t.Errorf("round trip changed size %dx%d -> %dx%d", lvl.Width, lvl.Height, again.Width, again.Height)
		}
		if !strings.HasPrefix(out, "; Level id: "+lvl.ID()+"\n") {
			t.Errorf("missing id header:\n%s", out)
		}
	}
}

func TestXSBSolutionFooter(t *testing.T) {
	lvl := mustParse(t, corridor)

	out := lvl.XSB(History{})
	if !strings.HasSuffix(out, "; No solution available\n") {
		t.Errorf("unexpected footer:\n%s", out)
	}

	out = lvl.XSB(mustHistory(t, "R"))
	if !strings.HasSuffix(out, "; Solution\n; R\n") {
		t.Errorf("unexpected footer:\n%s", out)
	}
	again := mustParse(t, out)
	if again.Comment != "Solution" {
		t.Errorf("post comment = %q, want Solution", again.Comment)
	}
}

func TestStateString(t *testing.T) {
	lvl := mustParse(t, corridor)
	st := lvl.NewState()
	st.Move(DirRight, false)
	want := "#####\n# @*#\n#####\n"
	if got := st.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
