package world

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/cavequest/internal/gamedata"
)

func buildDefault(t *testing.T) *World {
	t.Helper()
	w, err := Build(context.Background(),
		gamedata.MustLoadLayout(gamedata.DefaultLayout),
		gamedata.MustLoadItemRegistry(),
		gamedata.MustLoadEnemyRegistry())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return w
}

func TestBuildDefaultCave(t *testing.T) {
	w := buildDefault(t)

	if w.Start != (Position{X: 3, Y: 2}) {
		t.Errorf("Start = %+v, want (3,2)", w.Start)
	}
	if w.Len() != 12 {
		t.Errorf("Len() = %d, want 12", w.Len())
	}

	tests := []struct {
		x, y int
		name string
	}{
		{0, 2, "leave_cave_room"},
		{1, 2, "door"},
		{2, 0, "loot_room"},
		{2, 4, "enemy_room"},
		{3, 0, "enemy_room"},
		{3, 2, "starting_room"},
		{3, 4, "key_room"},
		{4, 0, "healing_fountain"},
		{4, 2, "entrance"},
	}

	for _, tt := range tests {
		tile := w.TileAt(tt.x, tt.y)
		if tile == nil {
			t.Errorf("TileAt(%d,%d) = nil, want %s", tt.x, tt.y, tt.name)
			continue
		}
		if got := tile.Name(); got != tt.name {
			t.Errorf("TileAt(%d,%d).Name() = %q, want %q", tt.x, tt.y, got, tt.name)
		}
		if tile.X != tt.x || tile.Y != tt.y {
			t.Errorf("tile at (%d,%d) reports position (%d,%d)", tt.x, tt.y, tile.X, tile.Y)
		}
	}
}

func TestBuildCreatesFreshState(t *testing.T) {
	w1 := buildDefault(t)
	w2 := buildDefault(t)

	e1 := w1.TileAt(2, 4).Enemy()
	e2 := w2.TileAt(2, 4).Enemy()
	if e1 == nil || e2 == nil {
		t.Fatal("ogre room should have an enemy")
	}
	if e1 == e2 {
		t.Error("each world should own its own enemies")
	}

	e1.TakeDamage(e1.HP)
	if !e2.IsAlive() {
		t.Error("killing an enemy in one world should not affect another")
	}
}

func TestBuildOrderIsStable(t *testing.T) {
	w1 := buildDefault(t)
	w2 := buildDefault(t)

	t1, t2 := w1.Tiles(), w2.Tiles()
	if len(t1) != len(t2) {
		t.Fatalf("tile count mismatch: %d != %d", len(t1), len(t2))
	}
	for i := range t1 {
		if t1[i].X != t2[i].X || t1[i].Y != t2[i].Y || t1[i].Name() != t2[i].Name() {
			t.Errorf("tile %d mismatch: %s(%d,%d) != %s(%d,%d)",
				i, t1[i].Name(), t1[i].X, t1[i].Y, t2[i].Name(), t2[i].X, t2[i].Y)
		}
	}
	if t1[0].X != 0 || t1[0].Y != 2 {
		t.Errorf("first tile = (%d,%d), want the exit at (0,2)", t1[0].X, t1[0].Y)
	}
}

func TestTileExists(t *testing.T) {
	w := buildDefault(t)

	tests := []struct {
		x, y   int
		exists bool
	}{
		{3, 2, true},
		{0, 0, false},
		{-1, 2, false},
		{3, 5, false},
		{99, 99, false},
	}

	for _, tt := range tests {
		if got := w.TileExists(tt.x, tt.y); got != tt.exists {
			t.Errorf("TileExists(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.exists)
		}
	}
}

func TestPlaceReplaces(t *testing.T) {
	w := New("test")
	w.Place(0, 0, EmptyCavePath{})
	w.Place(0, 1, RightCorner{})
	w.Place(0, 0, LeftCorner{})

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	if got := w.TileAt(0, 0).Name(); got != "left_corner" {
		t.Errorf("TileAt(0,0).Name() = %q, want left_corner", got)
	}
	if got := w.Tiles()[0].Name(); got != "left_corner" {
		t.Errorf("Tiles()[0].Name() = %q, want left_corner (placement order kept)", got)
	}
}

func TestBuildErrors(t *testing.T) {
	items := gamedata.MustLoadItemRegistry()
	enemies := gamedata.MustLoadEnemyRegistry()

	tests := []struct {
		name    string
		rows    [][]string
		wantErr error
		wantMsg string
	}{
		{"no start", [][]string{{"path", "exit"}}, ErrNoStart, ""},
		{"two starts", [][]string{{"start", "start"}}, ErrMultipleStart, ""},
		{"unknown kind", [][]string{{"start", "lava"}}, nil, `unknown room kind "lava"`},
		{"unknown item", [][]string{{"start", "loot:sword"}}, nil, `unknown item "sword"`},
		{"unknown enemy", [][]string{{"start"}, {"enemy:dragon"}}, nil, `cell (1,0): unknown enemy "dragon"`},
	}

	for _, tt := range tests {
		layout := gamedata.Layout{Name: tt.name, Rows: tt.rows}
		_, err := Build(context.Background(), layout, items, enemies)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
		if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("%s: error %q should contain %q", tt.name, err, tt.wantMsg)
		}
	}
}

func TestBuildIgnoresBlankCells(t *testing.T) {
	layout := gamedata.Layout{Name: "tiny", Rows: [][]string{{" ", "start", ""}}}
	w, err := Build(context.Background(), layout, gamedata.MustLoadItemRegistry(), gamedata.MustLoadEnemyRegistry())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}
