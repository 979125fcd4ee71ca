package game

import (
	"math/rand"

	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// DeckSize is the canonical card count: per color one zero, two of each
// 1..9 and of skip/reverse/draw-two, plus four wilds and four wild draw
// fours.
const DeckSize = 108

// Deck is the draw pile plus its discard pile. Every card of a round is
// in the draw pile, the discard pile, or a hand, and the total never
// changes. A Deck belongs to a single round and is not safe for
// concurrent use.
type Deck struct {
	cards []card.Card
	pile  *Pile
	rng   *rand.Rand
}

// NewDeck builds the standard 108-card deck shuffled with the given rng.
// The rng is the only source of randomness, so a fixed seed reproduces
// the round.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{
		cards: standardCards(),
		pile:  NewPile(),
		rng:   rng,
	}
	deck.shuffle()
	return deck
}

func (d *Deck) Pile() *Pile {
	return d.pile
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// DrawOne draws a single card.
func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

// Draw removes up to amount cards from the front of the draw pile. When
// the pile runs out mid-draw, the discard pile (minus its top card) is
// reshuffled in. ErrDeckExhausted is returned only when not a single
// card is available anywhere outside the hands.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount <= 0 {
		return nil, nil
	}
	if len(d.cards) < amount {
		d.recycle()
	}
	if len(d.cards) == 0 {
		return nil, ErrDeckExhausted
	}
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// PutBack reinserts a card at a random position, used when the first
// flipped card turns out to be wild.
func (d *Deck) PutBack(c card.Card) {
	position := d.rng.Intn(len(d.cards) + 1)
	d.cards = append(d.cards, nil)
	copy(d.cards[position+1:], d.cards[position:])
	d.cards[position] = c
}

func (d *Deck) recycle() {
	recycled := d.pile.TakeAllButTop()
	if len(recycled) == 0 {
		return
	}
	d.cards = append(d.cards, recycled...)
	d.shuffle()
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func standardCards() []card.Card {
	cards := make([]card.Card, 0, DeckSize)

	cards = append(cards, createBlackCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
