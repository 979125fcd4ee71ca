package card

import (
	"github.com/uno-arena/simulator/card/action"
	"github.com/uno-arena/simulator/card/color"
)

// Card is an immutable playing card. Wild cards report a nil Color; the
// color a player picks for them is recorded on the discard pile, never on
// the card itself.
type Card interface {
	Label() Label
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	String() string
}
