package game

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// Player is the capability contract every participant implements. The
// engine never special-cases a concrete strategy; any type satisfying
// this interface can join a round.
type Player interface {
	Name() string
	ID() int

	// Hand is the player's own card multiset. The engine mutates it only
	// through this accessor, so the player stays the single owner.
	Hand() *Hand

	// UpdateGameState is called once before each of the player's
	// decisions. It must only observe; calling it repeatedly with the
	// same arguments has no engine-visible effect.
	UpdateGameState(playableCards []card.Card, topCard card.Card, activeColor color.Color)

	// ChooseAction returns either a legal play of a card in hand or a
	// draw request. Anything else is a contract breach the engine
	// converts into a forced draw.
	ChooseAction() Action

	// ChooseColor is invoked right after the player puts down a wild
	// card. It must return one of the four concrete colors.
	ChooseColor(wildCard card.Card) color.Color

	// DecideSayUno is invoked after a play that leaves exactly one card
	// in hand. Returning false exposes the player to the uno penalty.
	DecideSayUno() bool

	// ShouldPlayDrawnCard is invoked when a drawn card happens to be
	// playable, to decide whether to put it down this same turn.
	ShouldPlayDrawnCard(drawnCard card.Card) bool
}
