// Package combat resolves the player's attacks against enemies.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/cavequest/internal/entity"
)

// Result contains the outcome of one attack.
type Result struct {
	Success bool
	Attack  string // The attack description that was used
	Damage  int
	Killed  bool
	Message string // Human-readable description
}

// Resolver applies attacks. Enemy hit points only change here.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver that picks attack descriptions with rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve attacks enemy with weapon. One of attacks is chosen uniformly as
// the flavor of the hit; the damage is always the weapon's.
func (r *Resolver) Resolve(weapon *entity.Weapon, enemy *entity.Enemy, attacks []string) Result {
	if enemy == nil || !enemy.IsAlive() {
		return Result{Message: "There is nothing left to fight."}
	}
	if weapon == nil {
		return Result{Message: "You have nothing to attack with!"}
	}

	attack := "You attack the " + enemy.Name
	if len(attacks) > 0 {
		attack = attacks[r.rng.Intn(len(attacks))]
	}

	damage := enemy.TakeDamage(weapon.Damage)
	result := Result{
		Success: true,
		Attack:  attack,
		Damage:  damage,
		Killed:  !enemy.IsAlive(),
	}

	if result.Killed {
		result.Message = fmt.Sprintf("%s! You deal %d damage and kill the %s!", attack, damage, enemy.Name)
	} else {
		result.Message = fmt.Sprintf("%s! You deal %d damage. The %s has %d HP remaining.", attack, damage, enemy.Name, enemy.HP)
	}
	return result
}
