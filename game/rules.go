package game

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// CanPlayOn is the single legality predicate: a card may be played when
// its color matches the active color, its label matches the top card, or
// it is wild. Both the engine and every bot must go through it.
func CanPlayOn(candidate card.Card, top card.Card, active color.Color) bool {
	if candidate.Label().IsWild() {
		return true
	}
	if active != nil && candidate.Color() == active {
		return true
	}
	return top != nil && candidate.Label() == top.Label()
}
