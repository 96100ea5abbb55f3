package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavequest/internal/action"
	"github.com/samdwyer/cavequest/internal/entity"
	"github.com/samdwyer/cavequest/internal/gamedata"
	"github.com/samdwyer/cavequest/internal/world"
)

func newTestSession(t *testing.T, easy bool) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.EasyMode = easy
	s, err := NewSessionFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	return s
}

// step executes the offered action of the given kind and enters the next turn.
func step(t *testing.T, s *Session, kind action.Kind) Turn {
	t.Helper()
	ctx := context.Background()
	a, ok := findKind(s.Actions(), kind)
	require.True(t, ok, "%s not offered at (%d,%d); have %v", kind, s.Player.X, s.Player.Y, action.Kinds(s.Actions()))
	_, err := s.Execute(ctx, a)
	require.NoError(t, err)
	turn, err := s.Enter(ctx)
	require.NoError(t, err)
	return turn
}

func TestNewSessionFromConfig(t *testing.T) {
	s := newTestSession(t, true)

	assert.NotEmpty(t, s.ID)
	x, y := s.Player.Position()
	assert.Equal(t, world.Position{X: 3, Y: 2}, world.Position{X: x, Y: y})
	assert.Equal(t, entity.MaxHP, s.Player.HP)
	require.NotNil(t, s.Player.EquippedWeapon)
	assert.Equal(t, "rock", s.Player.EquippedWeapon.ID())
	assert.Len(t, s.Player.Inventory, 2)
	assert.True(t, s.Player.EasyMode)
}

func TestNewSessionFromConfigBadLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "missing.json"

	_, err := NewSessionFromConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "load layout")
}

func TestStartingRoomEasyModeEndToEnd(t *testing.T) {
	s := newTestSession(t, true)

	turn, err := s.Enter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateExplore, turn.State)
	assert.Equal(t, "starting_room", turn.Tile.Name())
	assert.Equal(t, []action.Kind{action.MoveNorth, action.MoveSouth, action.ViewInventory, action.TurnOffEasyMode},
		action.Kinds(turn.Actions))

	msgs, err := s.Execute(context.Background(), action.DisableEasyMode())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.False(t, s.Player.EasyMode)
	assert.NotContains(t, action.Kinds(s.Actions()), action.TurnOffEasyMode)
}

func TestFullPlaythrough(t *testing.T) {
	s := newTestSession(t, false)
	ctx := context.Background()
	_, err := s.Enter(ctx)
	require.NoError(t, err)

	// The door will not open without the key.
	step(t, s, action.MoveNorth)
	turn := step(t, s, action.MoveNorth)
	assert.Equal(t, "door", turn.Tile.Name())
	assert.NotContains(t, action.Kinds(turn.Actions), action.MoveNorth)
	_, err = s.Execute(ctx, action.North())
	assert.ErrorIs(t, err, ErrActionUnavailable)

	// Fetch the dagger.
	step(t, s, action.MoveSouth)
	step(t, s, action.MoveWest)
	turn = step(t, s, action.MoveWest)
	assert.Equal(t, "loot_room", turn.Tile.Name())
	turn = step(t, s, action.GrabItem)
	assert.NotContains(t, action.Kinds(turn.Actions), action.GrabItem)
	assert.Contains(t, action.Kinds(turn.Actions), action.EquipDagger)
	turn = step(t, s, action.EquipDagger)
	assert.NotContains(t, action.Kinds(turn.Actions), action.EquipDagger)
	assert.Equal(t, entity.CategoryDagger, s.Player.EquippedCategory())

	// Fight the ogre: 30 HP, 4 damage a turn, three dagger hits.
	step(t, s, action.MoveEast)
	step(t, s, action.MoveEast)
	step(t, s, action.MoveEast)
	turn = step(t, s, action.MoveEast)
	require.Equal(t, StateCombat, turn.State)
	assert.Equal(t, entity.MaxHP-4, s.Player.HP)
	assert.Equal(t, []action.Kind{action.Attack}, action.Kinds(turn.Actions))
	assert.Len(t, turn.Actions[0].Attacks, 4)
	require.Len(t, turn.Messages, 1)

	step(t, s, action.Attack)
	step(t, s, action.Attack)
	turn = step(t, s, action.Attack)
	assert.Equal(t, StateExplore, turn.State)
	assert.Equal(t, entity.MaxHP-12, s.Player.HP)
	assert.Empty(t, turn.Messages, "a dead ogre does not attack")

	// Take the key and open the door.
	step(t, s, action.MoveSouth)
	step(t, s, action.GrabItem)
	assert.True(t, s.Player.Has(entity.CategoryKey))
	step(t, s, action.MoveNorth)
	step(t, s, action.MoveWest)
	step(t, s, action.MoveWest)
	turn = step(t, s, action.MoveNorth)
	assert.Contains(t, turn.Intro, "unlocked")
	assert.Contains(t, action.Kinds(turn.Actions), action.MoveNorth)

	turn = step(t, s, action.MoveNorth)
	assert.Equal(t, StateVictory, turn.State)
	assert.True(t, s.Player.Victory)
	assert.Empty(t, turn.Actions)

	// Nothing more happens once the player has won.
	turns := s.Turns()
	_, err = s.Execute(ctx, action.South())
	assert.ErrorIs(t, err, ErrGameOver)
	again, err := s.Enter(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateVictory, again.State)
	assert.Equal(t, turns, s.Turns())
	x, y := s.Player.Position()
	assert.Equal(t, world.Position{X: 0, Y: 2}, world.Position{X: x, Y: y})
}

func TestHealingFountainTurn(t *testing.T) {
	s := newTestSession(t, false)
	s.Player.MoveTo(4, 0)
	s.Player.HP = 3

	turn, err := s.Enter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "healing_fountain", turn.Tile.Name())
	assert.Equal(t, entity.MaxHP, s.Player.HP)
}

func TestDefeat(t *testing.T) {
	s := newTestSession(t, false)
	s.Player.MoveTo(3, 0) // giant spider
	s.Player.HP = 1

	turn, err := s.Enter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateDefeat, turn.State)
	assert.Empty(t, turn.Actions)
	assert.Nil(t, s.Actions())
	_, err = s.Execute(context.Background(), action.Inventory())
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestEasyModeRevives(t *testing.T) {
	s := newTestSession(t, true)
	s.Player.MoveTo(3, 0) // giant spider
	s.Player.HP = 1

	turn, err := s.Enter(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateExplore, turn.State)
	assert.Equal(t, "starting_room", turn.Tile.Name())
	assert.Equal(t, entity.MaxHP, s.Player.HP)
	assert.Len(t, turn.Messages, 2, "the spider's attack and the revival")
}

func TestViewInventory(t *testing.T) {
	s := newTestSession(t, false)
	_, err := s.Enter(context.Background())
	require.NoError(t, err)

	lines, err := s.Execute(context.Background(), action.Inventory())
	require.NoError(t, err)

	items := gamedata.MustLoadItemRegistry()
	assert.Equal(t, []string{
		"Inventory:",
		"Gold",
		"=====",
		items.MustGet("gold").Description,
		"Rock (5 damage) [equipped]",
	}, lines)

	s.Player.Inventory = nil
	lines, err = s.Execute(context.Background(), action.Inventory())
	require.NoError(t, err)
	assert.Equal(t, []string{"Your inventory is empty."}, lines)
}

func TestExecuteErrors(t *testing.T) {
	s := newTestSession(t, false)
	ctx := context.Background()

	_, err := s.Execute(ctx, action.Action{Kind: action.Kind(42)})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = s.Execute(ctx, action.Grab(entity.NewLoot(entity.NewKey())))
	assert.ErrorIs(t, err, ErrActionUnavailable)
	assert.False(t, s.Player.Has(entity.CategoryKey), "an action the tile does not offer must not run")
}

func TestEnterOffGrid(t *testing.T) {
	s := newTestSession(t, false)
	s.Player.MoveTo(0, 0)

	_, err := s.Enter(context.Background())
	assert.ErrorIs(t, err, ErrOffGrid)
}

func TestSessionsAreReproducible(t *testing.T) {
	attackLines := func() []string {
		s := newTestSession(t, false)
		s.Player.MoveTo(2, 4) // ogre
		var lines []string
		for i := 0; i < 3; i++ {
			turn, err := s.Enter(context.Background())
			require.NoError(t, err)
			lines = append(lines, turn.Messages...)
		}
		return lines
	}

	assert.Equal(t, attackLines(), attackLines())
}

func TestNewSessionUsesGivenWorld(t *testing.T) {
	w := world.New("tiny")
	w.Place(0, 0, world.StartingRoom{})
	w.Place(0, 1, world.LeaveCaveRoom{})
	p := entity.NewPlayer(0, 0)
	s := NewSession(w, p, rand.New(rand.NewSource(1)))

	_, err := s.Enter(context.Background())
	require.NoError(t, err)
	turn := step(t, s, action.MoveEast)

	assert.Equal(t, StateVictory, turn.State)
}
