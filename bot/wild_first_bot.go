package bot

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/game"
)

// WildFirstBot burns its strongest cards as soon as it can: wilds first,
// then the other action cards, then the highest number.
type WildFirstBot struct {
	Base
}

var wildFirstRules = []selector{
	byLabel(card.WildDrawFour, card.Wild),
	byLabel(card.DrawTwo, card.Skip, card.Reverse),
	highestNumber(),
	firstCandidate(),
}

func NewWildFirstBot(name string, id int, seed int64) *WildFirstBot {
	return &WildFirstBot{Base: NewBase(name, id, seed)}
}

func (b *WildFirstBot) ChooseAction() game.Action {
	candidates := b.PlayableCards()
	if len(candidates) == 0 {
		return game.DrawCard()
	}
	return game.PlayCard(pickByPriority(wildFirstRules, b.Hand().Cards(), candidates))
}

func (b *WildFirstBot) ChooseColor(wildCard card.Card) color.Color {
	return dominantColor(b.Hand().Cards())
}
