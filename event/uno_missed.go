package event

var UnoMissed = &unoMissedEmitter{}

type UnoMissedPayload struct {
	PlayerName string
	Penalty    int
}

type UnoMissedListener interface {
	OnUnoMissed(UnoMissedPayload)
}

type unoMissedEmitter struct {
	listeners []UnoMissedListener
}

func (e *unoMissedEmitter) AddListener(listener UnoMissedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoMissedEmitter) Emit(payload UnoMissedPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoMissed(payload)
	}
}
