package live

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/event"
)

func TestDescribeCard(t *testing.T) {
	require.Equal(t, "red 5", describeCard(card.NewNumberCard(color.Red, 5)))
	require.Equal(t, "blue skip", describeCard(card.NewSkipCard(color.Blue)))
	require.Equal(t, "green draw-two", describeCard(card.NewDrawTwoCard(color.Green)))
	require.Equal(t, "wild", describeCard(card.NewWildCard()))
	require.Equal(t, "wild-draw-four", describeCard(card.NewWildDrawFourCard()))
	require.Equal(t, "yellow wild", describeCard(card.NewColoredCard(card.NewWildCard(), color.Yellow)))
}

func TestFeedMessageShape(t *testing.T) {
	data, err := json.Marshal(feedMessage{Type: "uno_called", Player: "demon"})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"uno_called","player":"demon"}`, string(data))
}

func TestBroadcastWithoutSpectators(t *testing.T) {
	server := NewServer("127.0.0.1:0")

	// Every handler must be callable with no one connected.
	server.OnFirstCardPlayed(event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Red, 5)})
	server.OnCardPlayed(event.CardPlayedPayload{PlayerName: "demon", Card: card.NewWildCard()})
	server.OnColorPicked(event.ColorPickedPayload{PlayerName: "demon", Color: color.Green})
	server.OnPlayerPassed(event.PlayerPassedPayload{PlayerName: "eager", CardsDrawn: 2})
	server.OnUnoCalled(event.UnoCalledPayload{PlayerName: "demon"})
	server.OnUnoMissed(event.UnoMissedPayload{PlayerName: "eager", Penalty: 2})
	server.OnRoundWon(event.RoundWonPayload{PlayerName: "demon", Turns: 31})
}
