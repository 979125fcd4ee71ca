package bot

import (
	"fmt"

	"github.com/uno-arena/simulator/game"
)

// ByName builds a bot from its registered kind name, as used on the
// command line.
func ByName(kind string, name string, id int, seed int64) (game.Player, error) {
	switch kind {
	case "RandomBot":
		return NewRandomBot(name, id, seed), nil
	case "WildFirstBot":
		return NewWildFirstBot(name, id, seed), nil
	case "WildLastBot":
		return NewWildLastBot(name, id, seed), nil
	case "DemonHomeBot":
		return NewDemonHomeBot(name, id, seed), nil
	default:
		return nil, fmt.Errorf("unknown bot kind '%s'", kind)
	}
}

// Kinds lists the registered bot kinds.
func Kinds() []string {
	return []string{"RandomBot", "WildFirstBot", "WildLastBot", "DemonHomeBot"}
}
