package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/event"
)

func TestFirstCardPlayed(t *testing.T) {
	listener := event.NewDummyListener()
	event.FirstCardPlayed.AddListener(listener)

	payload := event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Red, 5)}
	event.FirstCardPlayed.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestCardPlayed(t *testing.T) {
	listener := event.NewDummyListener()
	event.CardPlayed.AddListener(listener)

	payload := event.CardPlayedPayload{
		PlayerName: "player a",
		Card:       card.NewDrawTwoCard(color.Blue),
		Drawn:      true,
	}
	event.CardPlayed.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestColorPicked(t *testing.T) {
	listener := event.NewDummyListener()
	event.ColorPicked.AddListener(listener)

	payload := event.ColorPickedPayload{PlayerName: "player a", Color: color.Green}
	event.ColorPicked.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestPlayerPassed(t *testing.T) {
	listener := event.NewDummyListener()
	event.PlayerPassed.AddListener(listener)

	payload := event.PlayerPassedPayload{PlayerName: "player a", CardsDrawn: 2}
	event.PlayerPassed.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestUnoCalled(t *testing.T) {
	listener := event.NewDummyListener()
	event.UnoCalled.AddListener(listener)

	payload := event.UnoCalledPayload{PlayerName: "player a"}
	event.UnoCalled.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestUnoMissed(t *testing.T) {
	listener := event.NewDummyListener()
	event.UnoMissed.AddListener(listener)

	payload := event.UnoMissedPayload{PlayerName: "player a", Penalty: 2}
	event.UnoMissed.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestRoundWon(t *testing.T) {
	listener := event.NewDummyListener()
	event.RoundWon.AddListener(listener)

	payload := event.RoundWonPayload{PlayerName: "player a", Turns: 42}
	event.RoundWon.Emit(payload)

	require.Contains(t, listener.ReceivedPayloads(), payload)
}

func TestEmitReachesEveryListenerInOrder(t *testing.T) {
	first := event.NewDummyListener()
	second := event.NewDummyListener()
	event.RoundWon.AddListener(first)
	event.RoundWon.AddListener(second)

	payload := event.RoundWonPayload{PlayerName: "player b", Turns: 7}
	event.RoundWon.Emit(payload)

	require.Contains(t, first.ReceivedPayloads(), payload)
	require.Contains(t, second.ReceivedPayloads(), payload)
}
