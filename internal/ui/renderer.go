package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// View is everything drawn for one turn.
type View struct {
	Title      string
	TitleColor tcell.Color
	Intro      string
	Messages   []string
	HP, MaxHP  int
	Actions    []string
	Footer     string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a view top to bottom: title, intro, messages, status line,
// actions and footer. Lines that do not fit the screen height are dropped.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()

	titleColor := v.TitleColor
	if titleColor == tcell.ColorDefault {
		titleColor = tcell.ColorYellow
	}

	y := 0
	y = r.drawLines(Wrap(v.Title, width), y, height, tcell.StyleDefault.Foreground(titleColor).Bold(true))
	y++
	y = r.drawLines(Wrap(v.Intro, width), y, height, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	y++
	for _, msg := range v.Messages {
		y = r.drawLines(Wrap(msg, width), y, height, tcell.StyleDefault.Foreground(tcell.ColorOrange))
	}
	if len(v.Messages) > 0 {
		y++
	}

	status := "HP " + strconv.Itoa(v.HP) + "/" + strconv.Itoa(v.MaxHP)
	y = r.drawLines([]string{status}, y, height, hpStyle(v.HP, v.MaxHP))
	y++

	for _, a := range v.Actions {
		y = r.drawLines(Wrap(a, width), y, height, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	if v.Footer != "" && height > 0 {
		r.drawLines([]string{runewidth.Truncate(v.Footer, width, "…")}, height-1, height,
			tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	}

	r.screen.Show()
}

// drawLines draws lines starting at row y and returns the next free row.
func (r *Renderer) drawLines(lines []string, y, height int, style tcell.Style) int {
	for _, line := range lines {
		if y >= height {
			return y
		}
		x := 0
		for _, ch := range line {
			r.screen.SetContent(x, y, ch, style)
			x += runewidth.RuneWidth(ch)
		}
		y++
	}
	return y
}

func hpStyle(hp, maxHP int) tcell.Style {
	switch {
	case maxHP > 0 && hp*4 <= maxHP:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case maxHP > 0 && hp*2 <= maxHP:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

// Wrap splits text into lines no wider than width display cells, breaking on
// spaces where possible. Existing newlines are kept.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
