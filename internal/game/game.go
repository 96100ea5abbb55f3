package game

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavequest/internal/action"
	"github.com/samdwyer/cavequest/internal/entity"
	"github.com/samdwyer/cavequest/internal/telemetry"
	"github.com/samdwyer/cavequest/internal/ui"
)

// Game ties a session to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	turn     Turn
	messages []string
	running  bool
}

// New creates a new game instance on the real terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	session, err := NewSessionFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return NewWithScreen(screen, session), nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(screen *ui.Screen, session *Session) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		running:  true,
	}
}

// Session returns the game's session.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	defer g.screen.Close()

	if err := g.start(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("turns", g.session.Turns()),
		attribute.String("outcome", g.session.State().String()),
	)
	return nil
}

func (g *Game) start(ctx context.Context) error {
	turn, err := g.session.Enter(ctx)
	if err != nil {
		return err
	}
	g.turn = turn
	g.messages = turn.Messages
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if r == 'q' || r == 'Q' {
		g.running = false
		return
	}

	a, ok := action.Find(g.turn.Actions, r)
	if !ok {
		return
	}
	g.takeTurn(ctx, a)
}

// takeTurn executes a and enters the next turn. Every action, including
// viewing the inventory, gives the current tile another go at the player.
func (g *Game) takeTurn(ctx context.Context, a action.Action) {
	result, err := g.session.Execute(ctx, a)
	if errors.Is(err, ErrGameOver) {
		g.running = false
		return
	}
	if err != nil {
		g.messages = []string{err.Error()}
		return
	}

	turn, err := g.session.Enter(ctx)
	if err != nil {
		g.messages = []string{err.Error()}
		return
	}
	g.turn = turn
	g.messages = append(result, turn.Messages...)
}

// view builds what the renderer draws for the current turn.
func (g *Game) view() ui.View {
	v := ui.View{
		Title:    title(g.turn),
		Intro:    g.turn.Intro,
		Messages: g.messages,
		HP:       g.session.Player.HP,
		MaxHP:    entity.MaxHP,
		Footer:   "q: quit",
	}

	if g.turn.Tile != nil {
		if enemy := g.turn.Tile.Enemy(); enemy != nil && enemy.IsAlive() {
			v.TitleColor = enemy.Color()
		}
	}

	for _, a := range g.turn.Actions {
		v.Actions = append(v.Actions, a.String())
	}

	switch g.turn.State {
	case StateVictory:
		v.Actions = []string{"You escaped the cave in " + strconv.Itoa(g.session.Turns()) + " turns."}
	case StateDefeat:
		v.Actions = []string{"You have died. Your journey comes to an end."}
	}
	return v
}

func title(turn Turn) string {
	if turn.Tile == nil {
		return ""
	}
	if enemy := turn.Tile.Enemy(); enemy != nil && enemy.IsAlive() {
		return enemy.Name
	}
	words := strings.Split(turn.Tile.Name(), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
