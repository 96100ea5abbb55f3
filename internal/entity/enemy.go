package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavequest/internal/gamedata"
)

// Weakness is a spot where an enemy can be hit.
type Weakness struct {
	Name string // e.g. "eyes"
	Spot string // e.g. "its cluster of glistening eyes"
}

// Enemy represents a hostile creature guarding a room.
type Enemy struct {
	Def        *gamedata.EnemyDef // Reference to the enemy definition (nil for ad-hoc enemies)
	Name       string
	HP         int // Current hit points
	MaxHP      int
	Damage     int // Damage dealt to the player each turn while alive
	Weaknesses []Weakness
	Attacks    []string // Attack lines, one is shown per hit
}

// NewEnemy creates an enemy from explicit stats.
func NewEnemy(name string, hp, damage int, weaknesses []Weakness, attacks []string) *Enemy {
	return &Enemy{
		Name:       name,
		HP:         hp,
		MaxHP:      hp,
		Damage:     damage,
		Weaknesses: weaknesses,
		Attacks:    attacks,
	}
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	weaknesses := make([]Weakness, 0, len(def.Weaknesses))
	for _, w := range def.Weaknesses {
		weaknesses = append(weaknesses, Weakness{Name: w.Name, Spot: w.Spot})
	}
	attacks := make([]string, len(def.Attacks))
	copy(attacks, def.Attacks)

	e := NewEnemy(def.Name, def.HP, def.Damage, weaknesses, attacks)
	e.Def = def
	return e
}

// IsAlive returns true while the enemy has hit points left.
func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

// TakeDamage reduces HP by amount, never below zero, and returns the damage dealt.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// IntroText returns the room text for this enemy, alive or dead.
func (e *Enemy) IntroText() string {
	if e.Def != nil {
		if e.IsAlive() && e.Def.Intro != "" {
			return e.Def.Intro
		}
		if !e.IsAlive() && e.Def.DeadIntro != "" {
			return e.Def.DeadIntro
		}
	}
	if e.IsAlive() {
		return "A " + e.Name + " blocks your way!"
	}
	return "The body of a " + e.Name + " lies on the ground."
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorRed
}
