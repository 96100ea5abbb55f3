// Package entity provides the things that live in the cave: items, enemies
// and the player.
package entity

import (
	"fmt"

	"github.com/samdwyer/cavequest/internal/gamedata"
)

// Category tags what an item can be used for. Tiles and actions query the
// category instead of switching on concrete item types.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryWeapon
	CategoryDagger
	CategoryKey
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "generic"
	case CategoryWeapon:
		return "weapon"
	case CategoryDagger:
		return "dagger"
	case CategoryKey:
		return "key"
	default:
		return "unknown"
	}
}

// Item is anything that can sit in a loot room or the player's inventory.
type Item interface {
	ID() string
	Name() string
	Description() string
	Category() Category
	// Describe returns the inventory listing for the item.
	Describe() string
}

type base struct {
	id          string
	name        string
	description string
}

func (b base) ID() string          { return b.id }
func (b base) Name() string        { return b.name }
func (b base) Description() string { return b.description }

func (b base) describe() string {
	return fmt.Sprintf("%s\n=====\n%s\n", b.name, b.description)
}

// Generic is an item with no behavior of its own.
type Generic struct {
	base
}

// NewGeneric creates a generic item.
func NewGeneric(id, name, description string) *Generic {
	return &Generic{base{id: id, name: name, description: description}}
}

func (g *Generic) Category() Category { return CategoryGeneric }
func (g *Generic) Describe() string   { return g.describe() }

// Technique is one named way of attacking with a weapon.
type Technique struct {
	Name string // e.g. "stab"
	Move string // e.g. "Stab at"
}

// Weapon is an equippable item. Class is CategoryWeapon or CategoryDagger.
type Weapon struct {
	base
	Class      Category
	Damage     int
	Techniques []Technique
}

// NewWeapon creates a weapon. A class other than CategoryDagger is treated as
// CategoryWeapon.
func NewWeapon(id, name, description string, class Category, damage int, techniques []Technique) *Weapon {
	if class != CategoryDagger {
		class = CategoryWeapon
	}
	return &Weapon{
		base:       base{id: id, name: name, description: description},
		Class:      class,
		Damage:     damage,
		Techniques: techniques,
	}
}

func (w *Weapon) Category() Category { return w.Class }

// Describe is always empty for weapons; the inventory view renders them from
// their name and damage instead.
func (w *Weapon) Describe() string { return "" }

// Key opens doors.
type Key struct {
	base
}

// NewKey creates the golden key.
func NewKey() *Key {
	return &Key{base{
		id:          "key",
		name:        "Key",
		description: "An ornate golden key with red gems encrusted",
	}}
}

func (k *Key) Category() Category { return CategoryKey }
func (k *Key) Describe() string   { return k.describe() }

// NewItemFromDef creates an item from a data-driven definition.
func NewItemFromDef(def *gamedata.ItemDef) Item {
	switch def.Kind {
	case gamedata.KindWeapon, gamedata.KindDagger:
		techniques := make([]Technique, 0, len(def.Techniques))
		for _, t := range def.Techniques {
			techniques = append(techniques, Technique{Name: t.Name, Move: t.Move})
		}
		class := CategoryWeapon
		if def.Kind == gamedata.KindDagger {
			class = CategoryDagger
		}
		return NewWeapon(def.ID, def.Name, def.Description, class, def.Damage, techniques)
	case gamedata.KindKey:
		return &Key{base{id: def.ID, name: def.Name, description: def.Description}}
	default:
		return NewGeneric(def.ID, def.Name, def.Description)
	}
}

// FirstOf returns the first item of the given category.
func FirstOf(items []Item, c Category) (Item, bool) {
	for _, item := range items {
		if item.Category() == c {
			return item, true
		}
	}
	return nil, false
}

// HasCategory reports whether any item has the given category.
func HasCategory(items []Item, c Category) bool {
	_, ok := FirstOf(items, c)
	return ok
}
