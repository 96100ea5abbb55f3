package entity

// Loot is the item list a loot room holds. It starts with at most one item
// and only ever shrinks.
type Loot struct {
	items []Item
}

// NewLoot creates a loot holder seeded with item. A nil item gives empty loot.
func NewLoot(item Item) *Loot {
	if item == nil {
		return &Loot{}
	}
	return &Loot{items: []Item{item}}
}

// Len returns the number of items still held.
func (l *Loot) Len() int {
	return len(l.items)
}

// Peek returns the held item without removing it.
func (l *Loot) Peek() (Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[0], true
}

// Take removes and returns the held item.
func (l *Loot) Take() (Item, bool) {
	item, ok := l.Peek()
	if !ok {
		return nil, false
	}
	l.items = l.items[1:]
	return item, true
}
