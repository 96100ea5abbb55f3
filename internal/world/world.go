package world

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavequest/internal/entity"
	"github.com/samdwyer/cavequest/internal/gamedata"
	"github.com/samdwyer/cavequest/internal/telemetry"
)

// Position is a grid coordinate. X is the row, Y the column.
type Position struct {
	X, Y int
}

// World is the sparse grid of cave tiles.
type World struct {
	Name  string
	Start Position
	tiles map[Position]*Tile
	order []*Tile
}

// New creates an empty world.
func New(name string) *World {
	return &World{
		Name:  name,
		tiles: make(map[Position]*Tile),
	}
}

// Place puts a tile at (x, y), replacing any tile already there.
func (w *World) Place(x, y int, room Room) *Tile {
	pos := Position{X: x, Y: y}
	tile := &Tile{X: x, Y: y, Room: room}
	if old, ok := w.tiles[pos]; ok {
		for i, t := range w.order {
			if t == old {
				w.order[i] = tile
			}
		}
	} else {
		w.order = append(w.order, tile)
	}
	w.tiles[pos] = tile
	return tile
}

// TileAt returns the tile at (x, y), or nil if there is none.
func (w *World) TileAt(x, y int) *Tile {
	return w.tiles[Position{X: x, Y: y}]
}

// TileExists reports whether there is a tile at (x, y).
func (w *World) TileExists(x, y int) bool {
	_, ok := w.tiles[Position{X: x, Y: y}]
	return ok
}

// Tiles returns all tiles in placement order.
func (w *World) Tiles() []*Tile {
	return w.order
}

// Len returns the number of tiles.
func (w *World) Len() int {
	return len(w.order)
}

// Errors returned by Build.
var (
	ErrNoStart       = errors.New("layout has no start tile")
	ErrMultipleStart = errors.New("layout has more than one start tile")
)

// Build creates a world from an authored layout, resolving item and enemy
// references through the registries.
func Build(ctx context.Context, layout gamedata.Layout, items *gamedata.ItemRegistry, enemies *gamedata.EnemyRegistry) (*World, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	w := New(layout.Name)
	starts := 0
	enemyCount := 0

	for x, row := range layout.Rows {
		for y, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			room, err := parseRoom(cell, items, enemies)
			if err != nil {
				span.RecordError(err)
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			switch room.(type) {
			case StartingRoom:
				starts++
				w.Start = Position{X: x, Y: y}
			case EnemyRoom:
				enemyCount++
			}
			w.Place(x, y, room)
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStart
	}

	span.SetAttributes(
		attribute.String("world.name", w.Name),
		attribute.Int("world.tiles", w.Len()),
		attribute.Int("world.enemies", enemyCount),
		attribute.Int("world.start_x", w.Start.X),
		attribute.Int("world.start_y", w.Start.Y),
	)
	return w, nil
}

// parseRoom turns a layout cell such as "loot:dagger" into a room.
func parseRoom(cell string, items *gamedata.ItemRegistry, enemies *gamedata.EnemyRegistry) (Room, error) {
	kind, arg, _ := strings.Cut(cell, ":")

	switch kind {
	case "start":
		return StartingRoom{}, nil
	case "entrance":
		return EntranceRoom{}, nil
	case "door":
		return DoorRoom{}, nil
	case "key":
		return NewKeyRoom(), nil
	case "path":
		return EmptyCavePath{}, nil
	case "corner_right":
		return RightCorner{}, nil
	case "corner_left":
		return LeftCorner{}, nil
	case "fountain":
		return HealingFountain{}, nil
	case "exit":
		return LeaveCaveRoom{}, nil
	case "loot":
		def := items.GetByID(arg)
		if def == nil {
			return nil, fmt.Errorf("unknown item %q", arg)
		}
		return NewLootRoom(entity.NewItemFromDef(def)), nil
	case "enemy":
		def := enemies.GetByID(arg)
		if def == nil {
			return nil, fmt.Errorf("unknown enemy %q", arg)
		}
		return NewEnemyRoom(entity.NewEnemyFromDef(def)), nil
	default:
		return nil, fmt.Errorf("unknown room kind %q", kind)
	}
}
