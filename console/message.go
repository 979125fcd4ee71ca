// Package console is the reporting collaborator: a play-by-play observer
// fed by game events and a statistics printer. Nothing in the engine
// depends on it.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

type MessageWriter struct {
	out io.Writer
}

func NewMessageWriter(out io.Writer) MessageWriter {
	if out == nil {
		out = color.Stdout
	}
	return MessageWriter{out: out}
}

func (m MessageWriter) FirstCardPlayed(card card.Card) {
	m.printfln("First card is %s", card)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) {
	m.printfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, card card.Card) {
	m.printfln("%s drew and played %s!", playerName, card)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) {
	m.printfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) {
	if amount == 1 {
		m.printfln("%s drew a card!", playerName)
	} else {
		m.printfln("%s drew %d cards!", playerName, amount)
	}
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) {
	m.printfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerCalledUno(playerName string) {
	m.printfln("%s shouts UNO!", playerName)
}

func (m MessageWriter) PlayerMissedUno(playerName string, penalty int) {
	m.printfln("%s forgot to say UNO and draws %d!", playerName, penalty)
}

func (m MessageWriter) WinnerFound(playerName string, turns int) {
	m.printfln("%s wins after %d turns!", playerName, turns)
}

func (m MessageWriter) Welcome() {
	m.printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
	m.println(strings.Repeat("-", 50))
}

func (m MessageWriter) printfln(format string, args ...interface{}) {
	m.println(fmt.Sprintf(format, args...))
}

func (m MessageWriter) println(args ...interface{}) {
	fmt.Fprintln(m.out, args...)
}
