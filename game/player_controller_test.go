package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/event"
)

// scriptedDeck builds a deck whose draw order is exactly the given cards.
func scriptedDeck(cards ...card.Card) *Deck {
	return &Deck{
		cards: cards,
		pile:  NewPile(),
		rng:   rand.New(rand.NewSource(1)),
	}
}

func TestTakeTurnPlaysTheChosenCard(t *testing.T) {
	chosenCard := card.NewNumberCard(color.Red, 5)
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{chosenCard, card.NewNumberCard(color.Blue, 3)})
	player.nextAction = PlayCard(chosenCard)
	controller := newPlayerController(player)

	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, drawn, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck())

	require.NoError(t, err)
	require.False(t, drawn)
	require.Equal(t, card.Card(chosenCard), playedCard)
	require.False(t, player.hand.Contains(chosenCard))
	require.Equal(t, 1, player.hand.Size())
}

func TestTakeTurnForcesADrawOnAnIllegalChoice(t *testing.T) {
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewNumberCard(color.Blue, 3),
	})
	// Legal color, but the card is not in the hand.
	player.nextAction = PlayCard(card.NewNumberCard(color.Red, 9))
	controller := newPlayerController(player)
	listener := event.NewDummyListener()
	event.PlayerPassed.AddListener(listener)

	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, drawn, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck(card.NewNumberCard(color.Green, 1)))

	require.NoError(t, err)
	require.False(t, drawn)
	require.Nil(t, playedCard)
	require.Equal(t, 3, player.hand.Size())
	require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "a", CardsDrawn: 1})
}

func TestTakeTurnRejectsACardOutsideThePlayableSet(t *testing.T) {
	heldButUnplayable := card.NewNumberCard(color.Blue, 3)
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{card.NewNumberCard(color.Red, 5), heldButUnplayable})
	player.nextAction = PlayCard(heldButUnplayable)
	controller := newPlayerController(player)

	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, _, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck(card.NewNumberCard(color.Green, 1)))

	require.NoError(t, err)
	require.Nil(t, playedCard)
	require.True(t, player.hand.Contains(heldButUnplayable))
	require.Equal(t, 3, player.hand.Size())
}

func TestTakeTurnPlaysAPlayableDrawOnTheSpot(t *testing.T) {
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3)})
	player.playDrawn = true
	controller := newPlayerController(player)

	drawableCard := card.NewNumberCard(color.Red, 5)
	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, drawn, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck(drawableCard))

	require.NoError(t, err)
	require.True(t, drawn)
	require.Equal(t, card.Card(drawableCard), playedCard)
	require.Equal(t, 1, player.hand.Size())
}

func TestTakeTurnKeepsAnUnplayableDraw(t *testing.T) {
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3)})
	player.playDrawn = true
	controller := newPlayerController(player)
	listener := event.NewDummyListener()
	event.PlayerPassed.AddListener(listener)

	unplayableCard := card.NewNumberCard(color.Green, 1)
	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, drawn, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck(unplayableCard))

	require.NoError(t, err)
	require.False(t, drawn)
	require.Nil(t, playedCard)
	require.True(t, player.hand.Contains(unplayableCard))
	require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "a", CardsDrawn: 1})
}

func TestTakeTurnKeepsAPlayableDrawThePlayerRefuses(t *testing.T) {
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3)})
	player.playDrawn = false
	controller := newPlayerController(player)

	drawableCard := card.NewNumberCard(color.Red, 5)
	topCard := card.NewNumberCard(color.Red, 7)
	playedCard, drawn, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck(drawableCard))

	require.NoError(t, err)
	require.False(t, drawn)
	require.Nil(t, playedCard)
	require.True(t, player.hand.Contains(drawableCard))
}

func TestTakeTurnSurfacesAnExhaustedDeck(t *testing.T) {
	player := newStubPlayer("a", 1)
	player.hand.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3)})
	controller := newPlayerController(player)

	topCard := card.NewNumberCard(color.Red, 7)
	_, _, err := controller.TakeTurn(topCard, topCard.Color(), scriptedDeck())

	require.ErrorIs(t, err, ErrDeckExhausted)
}

func TestPickColorFallsBackToRed(t *testing.T) {
	player := newStubPlayer("a", 1)
	controller := newPlayerController(player)

	require.Equal(t, color.Red, controller.PickColor(card.NewWildCard()))

	player.pickedColor = color.Blue
	require.Equal(t, color.Blue, controller.PickColor(card.NewWildCard()))
}

func TestAddCardsResetsTheUnoFlag(t *testing.T) {
	player := newStubPlayer("a", 1)
	controller := newPlayerController(player)

	controller.AddCards([]card.Card{card.NewNumberCard(color.Red, 5)})
	controller.saidUno = true

	// Growing past one card invalidates the declaration.
	controller.AddCards([]card.Card{card.NewNumberCard(color.Blue, 3)})
	require.False(t, controller.saidUno)
}
