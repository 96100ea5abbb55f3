// Package world provides the cave's tiles and the grid that indexes them.
package world

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/cavequest/internal/action"
	"github.com/samdwyer/cavequest/internal/entity"
)

// Grid answers whether a tile exists at a position.
type Grid interface {
	TileExists(x, y int) bool
}

// Room is the closed set of tile variants. Every switch over it must name
// all variants; the default case panics.
//
//sumtype:decl
type Room interface {
	room()
}

type (
	// StartingRoom is where the player spawns.
	StartingRoom struct{}
	// EntranceRoom announces itself by setting the player's room text.
	EntranceRoom struct{}
	// DoorRoom blocks the way north until the player carries a key.
	DoorRoom struct{}
	// LootRoom holds at most one item for the player to grab.
	LootRoom struct{ Loot *entity.Loot }
	// KeyRoom is a loot room whose item is the key, shown on a pedestal.
	KeyRoom struct{ Loot *entity.Loot }
	// EnemyRoom is guarded by one enemy for the whole game.
	EnemyRoom struct{ Enemy *entity.Enemy }
	// EmptyCavePath is an unremarkable stretch of cave.
	EmptyCavePath struct{}
	// RightCorner is a corridor turning east.
	RightCorner struct{}
	// LeftCorner is a corridor turning west.
	LeftCorner struct{}
	// HealingFountain restores the player to full health.
	HealingFountain struct{}
	// LeaveCaveRoom is the exit; entering it wins the game.
	LeaveCaveRoom struct{}
)

func (StartingRoom) room()    {}
func (EntranceRoom) room()    {}
func (DoorRoom) room()        {}
func (LootRoom) room()        {}
func (KeyRoom) room()         {}
func (EnemyRoom) room()       {}
func (EmptyCavePath) room()   {}
func (RightCorner) room()     {}
func (LeftCorner) room()      {}
func (HealingFountain) room() {}
func (LeaveCaveRoom) room()   {}

// NewKeyRoom creates a key room holding the golden key.
func NewKeyRoom() KeyRoom {
	return KeyRoom{Loot: entity.NewLoot(entity.NewKey())}
}

// NewLootRoom creates a loot room holding item.
func NewLootRoom(item entity.Item) LootRoom {
	return LootRoom{Loot: entity.NewLoot(item)}
}

// NewEnemyRoom creates a room guarded by enemy.
func NewEnemyRoom(enemy *entity.Enemy) EnemyRoom {
	return EnemyRoom{Enemy: enemy}
}

func unhandled(r Room) string {
	return fmt.Sprintf("world: unhandled room %T", r)
}

// Name returns the snake_case name of a room variant.
func Name(r Room) string {
	switch r.(type) {
	case StartingRoom:
		return "starting_room"
	case EntranceRoom:
		return "entrance"
	case DoorRoom:
		return "door"
	case LootRoom:
		return "loot_room"
	case KeyRoom:
		return "key_room"
	case EnemyRoom:
		return "enemy_room"
	case EmptyCavePath:
		return "empty_cave_path"
	case RightCorner:
		return "right_corner"
	case LeftCorner:
		return "left_corner"
	case HealingFountain:
		return "healing_fountain"
	case LeaveCaveRoom:
		return "leave_cave_room"
	default:
		panic(unhandled(r))
	}
}

// Tile is one cell of the cave.
type Tile struct {
	X, Y int
	Room Room
}

// Name returns the name of the tile's room variant.
func (t *Tile) Name() string {
	return Name(t.Room)
}

// Enemy returns the tile's enemy, or nil when the tile has none.
func (t *Tile) Enemy() *entity.Enemy {
	if r, ok := t.Room.(EnemyRoom); ok {
		return r.Enemy
	}
	return nil
}

// IntroText returns the text shown when the player is on the tile.
func (t *Tile) IntroText(p *entity.Player) string {
	switch r := t.Room.(type) {
	case StartingRoom:
		return "You find yourself in a cave with a flickering torch on the wall.\n" +
			"You can make out four paths, each equally as dark and foreboding."
	case EntranceRoom:
		return "You are in a large room that is empty save for a terminal to the north."
	case DoorRoom:
		if p.Has(entity.CategoryKey) {
			return "The door is unlocked. You may walk through."
		}
		return "The door is locked. Find a key to unlock it."
	case LootRoom:
		if item, ok := r.Loot.Peek(); ok {
			return "You notice a " + item.Name() + " lying in the dirt."
		}
		return "Scuff marks in the dirt show where something was picked up."
	case KeyRoom:
		if r.Loot.Len() >= 1 {
			return "You notice a golden key on a pedestal."
		}
		return "You see a wooden pedestal where the golden key once was."
	case EnemyRoom:
		return r.Enemy.IntroText()
	case EmptyCavePath:
		return "Another unremarkable part of the cave. You must forge onwards."
	case RightCorner:
		return "The corridor turns east."
	case LeftCorner:
		return "The corridor turns west."
	case HealingFountain:
		return "You see a glowing fountain before you. The water looks so cool and refreshing " +
			"that you are filled with determination for whatever lies ahead. " +
			"You dunk your entire face in and drink as much as you can. Full HP!"
	case LeaveCaveRoom:
		return "You see a bright light in the distance...\n" +
			"... it grows as you get closer! It's sunlight!\n\n" +
			"Victory is yours!"
	default:
		panic(unhandled(t.Room))
	}
}

// ModifyPlayer applies the tile's effect to the player and returns any
// messages produced. It runs every turn the player spends on the tile.
func (t *Tile) ModifyPlayer(p *entity.Player, rng *rand.Rand) []string {
	switch r := t.Room.(type) {
	case EntranceRoom:
		p.RoomText = t.IntroText(p)
		return nil
	case EnemyRoom:
		if !r.Enemy.IsAlive() {
			return nil
		}
		p.HP -= r.Enemy.Damage
		if len(r.Enemy.Attacks) == 0 {
			return nil
		}
		return []string{r.Enemy.Attacks[rng.Intn(len(r.Enemy.Attacks))]}
	case HealingFountain:
		p.Heal()
		return nil
	case LeaveCaveRoom:
		p.Victory = true
		return nil
	case StartingRoom, DoorRoom, LootRoom, KeyRoom, EmptyCavePath, RightCorner, LeftCorner:
		return nil
	default:
		panic(unhandled(t.Room))
	}
}

// AdjacentMoves returns one move per existing neighbor, checked in the order
// east (x, y+1), west (x, y-1), north (x-1, y), south (x+1, y). A door only
// offers north when the player carries a key.
func (t *Tile) AdjacentMoves(p *entity.Player, g Grid) []action.Action {
	moves := make([]action.Action, 0, 4)
	if g.TileExists(t.X, t.Y+1) {
		moves = append(moves, action.East())
	}
	if g.TileExists(t.X, t.Y-1) {
		moves = append(moves, action.West())
	}
	if g.TileExists(t.X-1, t.Y) && t.northOpen(p) {
		moves = append(moves, action.North())
	}
	if g.TileExists(t.X+1, t.Y) {
		moves = append(moves, action.South())
	}
	return moves
}

func (t *Tile) northOpen(p *entity.Player) bool {
	if _, ok := t.Room.(DoorRoom); ok {
		return p.Has(entity.CategoryKey)
	}
	return true
}

// AvailableActions returns the actions the player may take on this tile
// given the current player state.
func (t *Tile) AvailableActions(p *entity.Player, g Grid) []action.Action {
	switch r := t.Room.(type) {
	case StartingRoom:
		actions := append(t.AdjacentMoves(p, g), action.Inventory())
		if p.EasyMode {
			actions = append(actions, action.DisableEasyMode())
		}
		return withDagger(actions, p)
	case LootRoom:
		return withGrab(passiveActions(t.AdjacentMoves(p, g), p), r.Loot)
	case KeyRoom:
		return withGrab(passiveActions(t.AdjacentMoves(p, g), p), r.Loot)
	case EnemyRoom:
		if r.Enemy.IsAlive() {
			return withDagger(attackActions(r.Enemy, p), p)
		}
		return passiveActions(t.AdjacentMoves(p, g), p)
	case EntranceRoom, DoorRoom, EmptyCavePath, RightCorner, LeftCorner, HealingFountain, LeaveCaveRoom:
		return passiveActions(t.AdjacentMoves(p, g), p)
	default:
		panic(unhandled(t.Room))
	}
}
