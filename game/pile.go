package game

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// Pile is the discard pile. The last added card is the top card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// ReplaceTop swaps the top card, used to record the color picked for a
// wild without mutating the card itself.
func (p *Pile) ReplaceTop(card card.Card) {
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// ActiveColor is the color in force for legality checks: the top card's
// intrinsic color, or the picked color after a wild.
func (p *Pile) ActiveColor() color.Color {
	top := p.Top()
	if top == nil {
		return nil
	}
	return top.Color()
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop empties the pile except for the top card and hands the
// rest back for recycling into the draw pile. Colored wilds are
// unwrapped so the recycled cards are the original ones.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	taken := p.cards[:len(p.cards)-1]
	top := p.cards[len(p.cards)-1]

	recycled := make([]card.Card, 0, len(taken))
	for _, takenCard := range taken {
		if coloredCard, ok := takenCard.(card.ColoredCard); ok {
			takenCard = coloredCard.Unwrap()
		}
		recycled = append(recycled, takenCard)
	}

	p.cards = []card.Card{top}
	return recycled
}
