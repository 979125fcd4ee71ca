package card

import (
	"github.com/uno-arena/simulator/card/action"
	"github.com/uno-arena/simulator/card/color"
)

// ColoredCard records the color picked for a wild card while it sits on
// top of the discard pile. The wrapped card stays untouched; Unwrap
// recovers it when the pile is recycled into the draw pile.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Label() Label {
	return c.card.Label()
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Unwrap() Card {
	return c.card
}

func (c ColoredCard) String() string {
	return c.color.Paintf("%s", c.card.String())
}
