package live

import (
	"fmt"

	"github.com/uno-arena/simulator/card"
)

// feedMessage is the wire shape of one spectator event. Unused fields
// are omitted from the JSON.
type feedMessage struct {
	Type       string `json:"type"`
	Player     string `json:"player,omitempty"`
	Card       string `json:"card,omitempty"`
	Color      string `json:"color,omitempty"`
	Drawn      bool   `json:"drawn,omitempty"`
	CardsDrawn int    `json:"cards_drawn,omitempty"`
	Penalty    int    `json:"penalty,omitempty"`
	Turns      int    `json:"turns,omitempty"`
}

// describeCard renders a card without terminal escapes, e.g. "red 7",
// "blue skip", "wild-draw-four".
func describeCard(c card.Card) string {
	if c.Color() == nil {
		return c.Label().String()
	}
	return fmt.Sprintf("%s %s", c.Color().Name(), c.Label().String())
}
