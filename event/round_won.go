package event

var RoundWon = &roundWonEmitter{}

type RoundWonPayload struct {
	PlayerName string
	Turns      int
}

type RoundWonListener interface {
	OnRoundWon(RoundWonPayload)
}

type roundWonEmitter struct {
	listeners []RoundWonListener
}

func (e *roundWonEmitter) AddListener(listener RoundWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundWonEmitter) Emit(payload RoundWonPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundWon(payload)
	}
}
