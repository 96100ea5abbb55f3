package entity

// MaxHP is the most hit points a player can have.
const MaxHP = 16

// Player is the single adventurer. Tiles read and write its fields directly.
type Player struct {
	X, Y           int // Current position; X is the row, Y the column
	HP             int
	Inventory      []Item
	EquippedWeapon *Weapon // nil when bare-handed
	Victory        bool    // Set once the player leaves the cave
	EasyMode       bool
	RoomText       string // Last text set by a tile that announces itself
}

// NewPlayer creates a player at full health at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:  x,
		Y:  y,
		HP: MaxHP,
	}
}

// IsAlive returns true while the player has hit points left.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveTo places the player at an absolute position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// Has reports whether the inventory holds an item of the given category.
func (p *Player) Has(c Category) bool {
	return HasCategory(p.Inventory, c)
}

// Equip sets the equipped weapon.
func (p *Player) Equip(w *Weapon) {
	p.EquippedWeapon = w
}

// EquippedCategory returns the category of the equipped weapon, or
// CategoryGeneric when bare-handed.
func (p *Player) EquippedCategory() Category {
	if p.EquippedWeapon == nil {
		return CategoryGeneric
	}
	return p.EquippedWeapon.Category()
}

// Heal restores the player to MaxHP.
func (p *Player) Heal() {
	p.HP = MaxHP
}
