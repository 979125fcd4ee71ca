package game

import "errors"

var (
	// ErrDeckExhausted means a draw could not be satisfied even after
	// recycling the discard pile. With a closed card count this only
	// happens when every card sits in a hand, which signals an engine
	// bug rather than a game situation.
	ErrDeckExhausted = errors.New("no cards left to draw")

	// ErrInvalidPlay marks a chosen card that is in hand but not legal
	// against the current top card and active color.
	ErrInvalidPlay = errors.New("card is not playable on the current pile")

	// ErrIllegalAction marks a malformed decision, such as playing a
	// card that is not in the player's hand.
	ErrIllegalAction = errors.New("player action breaks the rules")
)
