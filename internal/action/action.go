// Package action defines the commands a player can issue on a turn.
// Tiles build them; the game session executes them.
package action

import (
	"strings"

	"github.com/samdwyer/cavequest/internal/entity"
)

// Kind identifies what an action does.
type Kind int

const (
	MoveNorth Kind = iota
	MoveSouth
	MoveEast
	MoveWest
	ViewInventory
	Attack
	GrabItem
	EquipDagger
	TurnOffEasyMode
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case MoveNorth:
		return "move_north"
	case MoveSouth:
		return "move_south"
	case MoveEast:
		return "move_east"
	case MoveWest:
		return "move_west"
	case ViewInventory:
		return "view_inventory"
	case Attack:
		return "attack"
	case GrabItem:
		return "grab_item"
	case EquipDagger:
		return "equip_dagger"
	case TurnOffEasyMode:
		return "turn_off_easy_mode"
	default:
		return "unknown"
	}
}

// IsMove reports whether the kind moves the player.
func (k Kind) IsMove() bool {
	return k <= MoveWest
}

// Delta returns the position change for a move. North and South change the
// row (x), East and West change the column (y).
func (k Kind) Delta() (dx, dy int) {
	switch k {
	case MoveNorth:
		return -1, 0
	case MoveSouth:
		return 1, 0
	case MoveEast:
		return 0, 1
	case MoveWest:
		return 0, -1
	default:
		return 0, 0
	}
}

// Action is a single command offered to the player.
type Action struct {
	Kind   Kind
	Hotkey rune
	Name   string

	Enemy   *entity.Enemy // Attack target
	Attacks []string      // Attack descriptions, one per technique/weakness pair
	Loot    *entity.Loot  // GrabItem source
}

// String returns the menu line for the action.
func (a Action) String() string {
	return string(a.Hotkey) + ": " + a.Name
}

func North() Action { return Action{Kind: MoveNorth, Hotkey: 'n', Name: "Move north"} }
func South() Action { return Action{Kind: MoveSouth, Hotkey: 's', Name: "Move south"} }
func East() Action  { return Action{Kind: MoveEast, Hotkey: 'e', Name: "Move east"} }
func West() Action  { return Action{Kind: MoveWest, Hotkey: 'w', Name: "Move west"} }

// Inventory shows the player's items.
func Inventory() Action {
	return Action{Kind: ViewInventory, Hotkey: 'i', Name: "View inventory"}
}

// AttackEnemy strikes enemy using one of the given attack descriptions.
func AttackEnemy(enemy *entity.Enemy, attacks []string) Action {
	return Action{
		Kind:    Attack,
		Hotkey:  'a',
		Name:    "Attack " + enemy.Name,
		Enemy:   enemy,
		Attacks: attacks,
	}
}

// Grab takes the item held by loot. The name is fixed when the action is
// built so the menu reads "Grab dagger" even after the loot is emptied.
func Grab(loot *entity.Loot) Action {
	name := "Grab item"
	if item, ok := loot.Peek(); ok {
		name = "Grab " + strings.ToLower(item.Name())
	}
	return Action{Kind: GrabItem, Hotkey: 'g', Name: name, Loot: loot}
}

// Dagger equips the first dagger in the inventory.
func Dagger() Action {
	return Action{Kind: EquipDagger, Hotkey: 'd', Name: "Equip dagger"}
}

// DisableEasyMode turns easy mode off for the rest of the game.
func DisableEasyMode() Action {
	return Action{Kind: TurnOffEasyMode, Hotkey: 'x', Name: "Turn off easy mode"}
}

// Find returns the action bound to hotkey.
func Find(actions []Action, hotkey rune) (Action, bool) {
	for _, a := range actions {
		if a.Hotkey == hotkey {
			return a, true
		}
	}
	return Action{}, false
}

// Kinds returns the kinds of actions, in order.
func Kinds(actions []Action) []Kind {
	kinds := make([]Kind, len(actions))
	for i, a := range actions {
		kinds[i] = a.Kind
	}
	return kinds
}
