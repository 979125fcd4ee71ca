package bot

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/game"
)

// WildLastBot hoards its wilds: numbers in the dominant color first,
// then the other action cards, wilds only when nothing else goes.
type WildLastBot struct {
	Base
}

var wildLastRules = []selector{
	highestNumberInDominantColor(),
	highestNumber(),
	byLabel(card.DrawTwo, card.Skip, card.Reverse),
	byLabel(card.Wild, card.WildDrawFour),
	firstCandidate(),
}

func NewWildLastBot(name string, id int, seed int64) *WildLastBot {
	return &WildLastBot{Base: NewBase(name, id, seed)}
}

func (b *WildLastBot) ChooseAction() game.Action {
	candidates := b.PlayableCards()
	if len(candidates) == 0 {
		return game.DrawCard()
	}
	return game.PlayCard(pickByPriority(wildLastRules, b.Hand().Cards(), candidates))
}

func (b *WildLastBot) ChooseColor(wildCard card.Card) color.Color {
	return dominantColor(b.Hand().Cards())
}
