package game

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// Hand is the unordered multiset of cards a player holds. It is owned by
// its player; the engine reaches it only through that player.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Contains(searchedCard card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(searchedCard) {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(top card.Card, active color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if CanPlayOn(candidateCard, top, active) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

func (h *Hand) RemoveCard(card card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(card) {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
