package bot

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/game"
)

// RandomBot plays a uniformly random playable card and picks colors at
// random. Useful as a baseline opponent.
type RandomBot struct {
	Base
}

func NewRandomBot(name string, id int, seed int64) *RandomBot {
	return &RandomBot{Base: NewBase(name, id, seed)}
}

func (b *RandomBot) ChooseAction() game.Action {
	candidates := b.PlayableCards()
	if len(candidates) == 0 {
		return game.DrawCard()
	}
	return game.PlayCard(candidates[b.Rand().Intn(len(candidates))])
}

func (b *RandomBot) ChooseColor(wildCard card.Card) color.Color {
	return color.All[b.Rand().Intn(len(color.All))]
}
