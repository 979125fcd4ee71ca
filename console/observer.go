package console

import (
	"io"

	"github.com/uno-arena/simulator/event"
)

// Observer narrates rounds by listening to game events. Attach it once
// before the simulation starts; it is meant for sequential, verbose
// runs.
type Observer struct {
	msg MessageWriter
}

func NewObserver(out io.Writer) *Observer {
	return &Observer{msg: NewMessageWriter(out)}
}

func (o *Observer) Attach() {
	event.FirstCardPlayed.AddListener(o)
	event.CardPlayed.AddListener(o)
	event.ColorPicked.AddListener(o)
	event.PlayerPassed.AddListener(o)
	event.UnoCalled.AddListener(o)
	event.UnoMissed.AddListener(o)
	event.RoundWon.AddListener(o)
}

func (o *Observer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	o.msg.FirstCardPlayed(payload.Card)
}

func (o *Observer) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Drawn {
		o.msg.PlayerDrewAndPlayedCard(payload.PlayerName, payload.Card)
	} else {
		o.msg.PlayerPlayedCard(payload.PlayerName, payload.Card)
	}
}

func (o *Observer) OnColorPicked(payload event.ColorPickedPayload) {
	o.msg.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (o *Observer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.CardsDrawn > 0 {
		o.msg.PlayerDrewCards(payload.PlayerName, payload.CardsDrawn)
	} else {
		o.msg.PlayerTurnSkipped(payload.PlayerName)
	}
}

func (o *Observer) OnUnoCalled(payload event.UnoCalledPayload) {
	o.msg.PlayerCalledUno(payload.PlayerName)
}

func (o *Observer) OnUnoMissed(payload event.UnoMissedPayload) {
	o.msg.PlayerMissedUno(payload.PlayerName, payload.Penalty)
}

func (o *Observer) OnRoundWon(payload event.RoundWonPayload) {
	o.msg.WinnerFound(payload.PlayerName, payload.Turns)
}
