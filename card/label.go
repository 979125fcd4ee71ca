package card

import "fmt"

// Label is the closed set of card faces. Number cards occupy Zero..Nine
// so that label equality doubles as rank equality.
type Label int

const (
	Zero Label = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// NumberLabel maps a rank 0..9 to its label. Ranks outside that range
// panic, deck construction never produces them.
func NumberLabel(number int) Label {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("no label for number %d", number))
	}
	return Zero + Label(number)
}

// Number reports the rank of a numeric label.
func (l Label) Number() (int, bool) {
	if l >= Zero && l <= Nine {
		return int(l), true
	}
	return 0, false
}

// IsWild reports whether the label belongs to a card with no intrinsic color.
func (l Label) IsWild() bool {
	return l == Wild || l == WildDrawFour
}

func (l Label) String() string {
	switch {
	case l >= Zero && l <= Nine:
		return fmt.Sprintf("%d", int(l))
	case l == Skip:
		return "skip"
	case l == Reverse:
		return "reverse"
	case l == DrawTwo:
		return "draw-two"
	case l == Wild:
		return "wild"
	case l == WildDrawFour:
		return "wild-draw-four"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}
