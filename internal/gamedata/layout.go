package gamedata

// Layout is an authored cave map. Rows are indexed by x, columns by y.
// Each cell is empty or a room kind such as "start", "loot:dagger" or
// "enemy:ogre".
type Layout struct {
	Name string     `json:"name" validate:"required"`
	Rows [][]string `json:"rows" validate:"required,min=1"`
}

// LoadLayout loads a cave layout from the embedded filesystem.
func LoadLayout(filename string) (Layout, error) {
	return Load[Layout](filename)
}

// MustLoadLayout loads a layout, panicking on error.
func MustLoadLayout(filename string) Layout {
	return MustLoad[Layout](filename)
}

// DefaultLayout is the file name of the cave shipped with the game.
const DefaultLayout = "cave.json"
