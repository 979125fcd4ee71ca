// Package event carries typed emitter/listener pairs for everything that
// happens during a round. Listeners are registered once, before the
// simulation starts; emitters are never mutated mid-round.
package event

import "github.com/uno-arena/simulator/card"

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	// Drawn marks a card played straight from the deck on the same turn
	// it was drawn.
	Drawn bool
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
