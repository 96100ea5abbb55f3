package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavequest/internal/action"
	"github.com/samdwyer/cavequest/internal/combat"
	"github.com/samdwyer/cavequest/internal/entity"
	"github.com/samdwyer/cavequest/internal/gamedata"
	"github.com/samdwyer/cavequest/internal/logger"
	"github.com/samdwyer/cavequest/internal/telemetry"
	"github.com/samdwyer/cavequest/internal/world"
)

var (
	// ErrGameOver is returned once the player has won or died.
	ErrGameOver = errors.New("game over")
	// ErrUnknownAction is returned for an action kind the session cannot execute.
	ErrUnknownAction = errors.New("unknown action")
	// ErrActionUnavailable is returned for an action the current tile does not offer.
	ErrActionUnavailable = errors.New("action not available here")
	// ErrOffGrid means the player stands where there is no tile.
	ErrOffGrid = errors.New("player is not on a tile")
)

// Turn is what the player sees at the start of a turn.
type Turn struct {
	Tile     *world.Tile
	Intro    string
	Messages []string
	Actions  []action.Action
	State    State
}

// Session runs one playthrough: a world, a player, and the turn rules.
type Session struct {
	ID     string
	World  *world.World
	Player *entity.Player

	rng      *rand.Rand
	resolver *combat.Resolver
	turns    int
}

// NewSession creates a session over an existing world and player.
func NewSession(w *world.World, p *entity.Player, rng *rand.Rand) *Session {
	return &Session{
		ID:       uuid.NewString(),
		World:    w,
		Player:   p,
		rng:      rng,
		resolver: combat.NewResolver(rng),
	}
}

// NewSessionFromConfig loads the game data, builds the cave and places a
// freshly equipped player on the start tile.
func NewSessionFromConfig(ctx context.Context, cfg Config) (*Session, error) {
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}
	layout, err := gamedata.LoadLayout(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	w, err := world.Build(ctx, layout, items, enemies)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := NewPlayer(w.Start, items)
	p.EasyMode = cfg.EasyMode

	return NewSession(w, p, rand.New(rand.NewSource(seed))), nil
}

// NewPlayer creates a player at start carrying gold and a rock, with the
// rock equipped.
func NewPlayer(start world.Position, items *gamedata.ItemRegistry) *entity.Player {
	p := entity.NewPlayer(start.X, start.Y)
	p.AddItem(entity.NewItemFromDef(items.MustGet("gold")))

	rock := entity.NewItemFromDef(items.MustGet("rock"))
	p.AddItem(rock)
	if w, ok := rock.(*entity.Weapon); ok {
		p.Equip(w)
	}
	return p
}

// Tile returns the tile under the player, or nil if they are off the grid.
func (s *Session) Tile() *world.Tile {
	return s.World.TileAt(s.Player.Position())
}

// Turns returns the number of turns entered so far.
func (s *Session) Turns() int {
	return s.turns
}

// State derives the game state from the player and the current tile.
func (s *Session) State() State {
	switch {
	case s.Player.Victory:
		return StateVictory
	case !s.Player.IsAlive():
		return StateDefeat
	}
	if tile := s.Tile(); tile != nil {
		if enemy := tile.Enemy(); enemy != nil && enemy.IsAlive() {
			return StateCombat
		}
	}
	return StateExplore
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.State().IsTerminal()
}

// Actions returns the actions available on the current tile. There are none
// once the game is over.
func (s *Session) Actions() []action.Action {
	tile := s.Tile()
	if tile == nil || s.Over() {
		return nil
	}
	return tile.AvailableActions(s.Player, s.World)
}

func (s *Session) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(logger.WithSessionID(ctx, s.ID))
}

// Enter starts a turn on the current tile: the tile acts on the player, then
// the resulting actions are computed. Once the game is over the tile is
// described but no longer acts.
func (s *Session) Enter(ctx context.Context) (Turn, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.turn")
	defer span.End()

	tile := s.Tile()
	if tile == nil {
		x, y := s.Player.Position()
		span.RecordError(ErrOffGrid)
		return Turn{}, fmt.Errorf("%w at (%d,%d)", ErrOffGrid, x, y)
	}

	if s.Over() {
		return Turn{Tile: tile, Intro: tile.IntroText(s.Player), State: s.State()}, nil
	}

	s.turns++
	intro := tile.IntroText(s.Player)
	messages := tile.ModifyPlayer(s.Player, s.rng)

	if !s.Player.IsAlive() && s.Player.EasyMode {
		s.Player.Heal()
		s.Player.MoveTo(s.World.Start.X, s.World.Start.Y)
		messages = append(messages, "Everything goes dark... You wake up back where you started.")
		tile = s.Tile()
		intro = tile.IntroText(s.Player)
		s.log(ctx).Info("player revived", "turn", s.turns)
	}

	turn := Turn{
		Tile:     tile,
		Intro:    intro,
		Messages: messages,
		State:    s.State(),
	}
	if !turn.State.IsTerminal() {
		turn.Actions = tile.AvailableActions(s.Player, s.World)
	}

	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("turn", s.turns),
		attribute.String("tile", tile.Name()),
		attribute.Int("player.hp", s.Player.HP),
		attribute.String("state", turn.State.String()),
		attribute.Int("actions", len(turn.Actions)),
	)
	s.log(ctx).Debug("turn entered",
		"turn", s.turns,
		"tile", tile.Name(),
		"hp", s.Player.HP,
		"state", turn.State.String())

	if turn.State.IsTerminal() {
		s.log(ctx).Info("game over", "state", turn.State.String(), "turns", s.turns)
	}
	return turn, nil
}

// Execute carries out an action offered on the current tile and returns the
// messages it produced. The player's next turn starts with Enter.
func (s *Session) Execute(ctx context.Context, a action.Action) ([]string, error) {
	if s.Over() {
		return nil, ErrGameOver
	}
	if a.Kind < action.MoveNorth || a.Kind > action.TurnOffEasyMode {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, a.Kind)
	}

	offered, ok := findKind(s.Actions(), a.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionUnavailable, a.Kind)
	}

	s.log(ctx).Debug("executing action", "action", offered.Kind.String())

	p := s.Player
	switch offered.Kind {
	case action.MoveNorth, action.MoveSouth, action.MoveEast, action.MoveWest:
		dx, dy := offered.Kind.Delta()
		p.Move(dx, dy)
		return nil, nil

	case action.ViewInventory:
		return inventoryLines(p), nil

	case action.Attack:
		return s.attack(ctx, offered), nil

	case action.GrabItem:
		item, ok := offered.Loot.Take()
		if !ok {
			return []string{"There is nothing here to take."}, nil
		}
		p.AddItem(item)
		return []string{"You pick up the " + item.Name() + "."}, nil

	case action.EquipDagger:
		item, _ := entity.FirstOf(p.Inventory, entity.CategoryDagger)
		dagger, ok := item.(*entity.Weapon)
		if !ok {
			return []string{"You have no dagger to equip."}, nil
		}
		p.Equip(dagger)
		return []string{"You equip the " + dagger.Name() + "."}, nil

	case action.TurnOffEasyMode:
		p.EasyMode = false
		return []string{"Easy mode is now off. Be careful."}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, offered.Kind)
	}
}

func (s *Session) attack(ctx context.Context, a action.Action) []string {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	result := s.resolver.Resolve(s.Player.EquippedWeapon, a.Enemy, a.Attacks)

	span.SetAttributes(
		attribute.String("enemy", a.Enemy.ID()),
		attribute.Int("damage", result.Damage),
		attribute.Bool("killed", result.Killed),
	)
	if result.Killed {
		s.log(ctx).Info("enemy killed", "enemy", a.Enemy.ID(), "turn", s.turns)
	}
	return []string{result.Message}
}

func findKind(actions []action.Action, kind action.Kind) (action.Action, bool) {
	for _, a := range actions {
		if a.Kind == kind {
			return a, true
		}
	}
	return action.Action{}, false
}

// inventoryLines lists the player's items. Weapons describe themselves as an
// empty string, so they are listed by name and damage instead.
func inventoryLines(p *entity.Player) []string {
	if len(p.Inventory) == 0 {
		return []string{"Your inventory is empty."}
	}

	lines := []string{"Inventory:"}
	for _, item := range p.Inventory {
		if d := item.Describe(); d != "" {
			lines = append(lines, strings.Split(strings.TrimRight(d, "\n"), "\n")...)
			continue
		}
		line := item.Name()
		if w, ok := item.(*entity.Weapon); ok {
			line = fmt.Sprintf("%s (%d damage)", w.Name(), w.Damage)
			if w == p.EquippedWeapon {
				line += " [equipped]"
			}
		}
		lines = append(lines, line)
	}
	return lines
}
