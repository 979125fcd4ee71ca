package card

import (
	"github.com/uno-arena/simulator/card/action"
	"github.com/uno-arena/simulator/card/color"
)

type DrawTwoCard struct {
	color color.Color
}

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	return DrawTwoCard{color: color}
}

func (c DrawTwoCard) Label() Label {
	return DrawTwo
}

// The turn forfeit that follows the forced draw is applied by the
// resolver when the penalty lands, so the card only carries the draw.
func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, typeMatched := other.(DrawTwoCard)
	return typeMatched && c.color == other.Color()
}

func (c DrawTwoCard) String() string {
	return c.color.Paint("+2!")
}
