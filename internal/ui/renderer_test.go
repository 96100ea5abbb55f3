package ui

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "The corridor turns east.", 40, []string{"The corridor turns east."}},
		{"breaks on spaces", "The corridor turns east.", 12, []string{"The corridor", "turns east."}},
		{"keeps newlines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"splits long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"zero width", "anything", 0, nil},
	}

	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: Wrap(%q, %d) = %q, want %q", tt.name, tt.text, tt.width, got, tt.want)
		}
	}
}

func TestWrapRespectsDisplayWidth(t *testing.T) {
	for _, line := range Wrap("洞窟 の 奥 に 光 が 見える", 6) {
		if w := runewidth.StringWidth(line); w > 6 {
			t.Errorf("line %q is %d cells wide, want <= 6", line, w)
		}
	}
}

func TestRenderOnSimulationScreen(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(ss)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	defer screen.Close()
	ss.SetSize(40, 10)

	r := NewRenderer(screen)
	r.Render(View{
		Title:    "Starting Room",
		Intro:    "You find yourself in a cave with a flickering torch on the wall.",
		Messages: []string{"The spider bites!"},
		HP:       3,
		MaxHP:    16,
		Actions:  []string{"n: Move north", "i: View inventory"},
		Footer:   "q: quit",
	})

	if w, h := screen.Size(); w != 40 || h != 10 {
		t.Errorf("Size() = (%d,%d), want (40,10)", w, h)
	}
}

func TestHPStyle(t *testing.T) {
	lowFG, _, _ := hpStyle(2, 16).Decompose()
	fullFG, _, _ := hpStyle(16, 16).Decompose()
	if lowFG == fullFG {
		t.Error("low and full HP should render differently")
	}
}
