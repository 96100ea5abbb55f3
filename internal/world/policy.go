package world

import (
	"github.com/samdwyer/cavequest/internal/action"
	"github.com/samdwyer/cavequest/internal/entity"
)

// passiveActions is the action list of a tile with nothing to fight:
// the moves, the inventory, and the dagger check.
func passiveActions(moves []action.Action, p *entity.Player) []action.Action {
	return withDagger(append(moves, action.Inventory()), p)
}

// withDagger offers to equip a dagger when one is carried but not wielded.
// It is offered at most once however many daggers are carried.
func withDagger(actions []action.Action, p *entity.Player) []action.Action {
	if p.Has(entity.CategoryDagger) && p.EquippedCategory() != entity.CategoryDagger {
		return append(actions, action.Dagger())
	}
	return actions
}

// withGrab offers the loot's item while there is one.
func withGrab(actions []action.Action, loot *entity.Loot) []action.Action {
	if loot.Len() > 0 {
		return append(actions, action.Grab(loot))
	}
	return actions
}

// attackActions pairs every technique of the equipped weapon with every
// weakness of the enemy. All pairs collapse into a single attack action that
// carries the descriptions; with no pairs there is nothing to attack with.
func attackActions(enemy *entity.Enemy, p *entity.Player) []action.Action {
	actions := make([]action.Action, 0, 2)
	if p.EquippedWeapon == nil {
		return actions
	}

	var attacks []string
	for _, technique := range p.EquippedWeapon.Techniques {
		for _, weakness := range enemy.Weaknesses {
			attacks = append(attacks, technique.Move+" "+weakness.Spot)
		}
	}
	if len(attacks) > 0 {
		actions = append(actions, action.AttackEnemy(enemy, attacks))
	}
	return actions
}
