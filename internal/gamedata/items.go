package gamedata

// Item kinds as they appear in items.json.
const (
	KindGeneric = "generic"
	KindWeapon  = "weapon"
	KindDagger  = "dagger"
	KindKey     = "key"
)

// TechniqueDef is one named way of using a weapon.
type TechniqueDef struct {
	Name string `json:"name" validate:"required"` // e.g. "stab"
	Move string `json:"move" validate:"required"` // e.g. "Stab at"
}

// ItemDef defines an item loaded from JSON.
type ItemDef struct {
	ID          string         `json:"id" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Kind        string         `json:"kind" validate:"required,oneof=generic weapon dagger key"`
	Damage      int            `json:"damage" validate:"min=0"`
	Techniques  []TechniqueDef `json:"techniques" validate:"dive"`
}

// IsWeapon reports whether the definition describes something that can be equipped.
func (d *ItemDef) IsWeapon() bool {
	return d.Kind == KindWeapon || d.Kind == KindDagger
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items" validate:"required,min=1,dive"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
