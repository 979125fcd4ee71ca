package event

var PlayerPassed = &playerPassedEmitter{}

type PlayerPassedPayload struct {
	PlayerName string
	// CardsDrawn is how many cards the player picked up on the turn they
	// forfeited: one for a fruitless draw, more for a landed penalty,
	// zero when their turn was skipped outright.
	CardsDrawn int
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
