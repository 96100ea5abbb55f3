package gamedata

import "github.com/gdamore/tcell/v2"

// WeaknessDef is a spot an enemy can be hit.
type WeaknessDef struct {
	Name string `json:"name" validate:"required"` // e.g. "eyes"
	Spot string `json:"spot" validate:"required"` // e.g. "its cluster of glistening eyes"
}

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID         string        `json:"id" validate:"required"`
	Name       string        `json:"name" validate:"required"`
	Color      string        `json:"color" validate:"omitempty,hexcolor"`
	HP         int           `json:"hp" validate:"min=1"`
	Damage     int           `json:"damage" validate:"min=0"`
	Weaknesses []WeaknessDef `json:"weaknesses" validate:"dive"`
	Attacks    []string      `json:"attacks" validate:"required,min=1,dive,required"`
	Intro      string        `json:"intro" validate:"required"`
	DeadIntro  string        `json:"deadIntro" validate:"required"`
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorRed // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies" validate:"required,min=1,dive"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
