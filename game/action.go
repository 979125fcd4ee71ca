package game

import "github.com/uno-arena/simulator/card"

// Action is a player's decision for one turn: play a specific card from
// hand, or draw. Exactly one of the two forms is valid per decision.
type Action struct {
	card card.Card
	draw bool
}

func PlayCard(c card.Card) Action {
	return Action{card: c}
}

func DrawCard() Action {
	return Action{draw: true}
}

func (a Action) Card() card.Card {
	return a.card
}

func (a Action) IsDraw() bool {
	return a.draw
}
