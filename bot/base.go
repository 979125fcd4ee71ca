// Package bot holds the built-in strategies. Every bot embeds Base and
// picks its plays through an ordered table of priority rules, so a new
// strategy is mostly data.
package bot

import (
	"math/rand"

	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/game"
)

// Base carries what every bot needs: identity, the hand it owns, a
// private seeded rng, and the last observed game state.
type Base struct {
	name string
	id   int
	hand *game.Hand
	rng  *rand.Rand

	playableCards []card.Card
	topCard       card.Card
	activeColor   color.Color
}

func NewBase(name string, id int, seed int64) Base {
	return Base{
		name: name,
		id:   id,
		hand: game.NewHand(),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) ID() int {
	return b.id
}

func (b *Base) Hand() *game.Hand {
	return b.hand
}

func (b *Base) UpdateGameState(playableCards []card.Card, topCard card.Card, activeColor color.Color) {
	b.playableCards = playableCards
	b.topCard = topCard
	b.activeColor = activeColor
}

func (b *Base) PlayableCards() []card.Card {
	return b.playableCards
}

func (b *Base) TopCard() card.Card {
	return b.topCard
}

func (b *Base) ActiveColor() color.Color {
	return b.activeColor
}

func (b *Base) Rand() *rand.Rand {
	return b.rng
}

func (b *Base) DecideSayUno() bool {
	return true
}

func (b *Base) ShouldPlayDrawnCard(drawnCard card.Card) bool {
	return game.CanPlayOn(drawnCard, b.topCard, b.activeColor)
}
