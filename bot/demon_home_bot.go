package bot

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/game"
)

// DemonHomeBot switches tactics on hand size. With a big hand it bleeds
// the opponent with draw-twos and skips while dumping high numbers of
// its dominant color, saving wilds for later. Close to going out it
// fires the wilds first and sheds its lowest numbers.
type DemonHomeBot struct {
	Base
}

// The precedence of both tables is load-bearing; reordering them changes
// the bot's measured win rate.
var demonBigHandRules = []selector{
	byLabel(card.DrawTwo),
	byLabel(card.Skip),
	byLabel(card.Reverse),
	highestNumberInDominantColor(),
	byLabel(card.WildDrawFour),
	byLabel(card.Wild),
	firstCandidate(),
}

var demonSmallHandRules = []selector{
	byLabel(card.WildDrawFour),
	byLabel(card.Wild),
	byLabel(card.DrawTwo),
	byLabel(card.Skip),
	byLabel(card.Reverse),
	lowestNumber(),
	firstCandidate(),
}

func NewDemonHomeBot(name string, id int, seed int64) *DemonHomeBot {
	return &DemonHomeBot{Base: NewBase(name, id, seed)}
}

func (b *DemonHomeBot) ChooseAction() game.Action {
	candidates := b.PlayableCards()
	if len(candidates) == 0 {
		return game.DrawCard()
	}
	rules := demonSmallHandRules
	if b.Hand().Size() > 4 {
		rules = demonBigHandRules
	}
	return game.PlayCard(pickByPriority(rules, b.Hand().Cards(), candidates))
}

func (b *DemonHomeBot) ChooseColor(wildCard card.Card) color.Color {
	return dominantColor(b.Hand().Cards())
}

func (b *DemonHomeBot) DecideSayUno() bool {
	return b.Hand().Size() == 1
}
