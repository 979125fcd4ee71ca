package bot

import (
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
)

// selector is one named priority rule: given the full hand and the
// playable candidates, it returns its pick or nil when it does not
// apply. A bot's strategy is an ordered selector table evaluated top to
// bottom.
type selector func(hand []card.Card, candidates []card.Card) card.Card

func pickByPriority(rules []selector, hand []card.Card, candidates []card.Card) card.Card {
	for _, rule := range rules {
		if picked := rule(hand, candidates); picked != nil {
			return picked
		}
	}
	return nil
}

// byLabel picks the first candidate bearing one of the given labels, in
// label order.
func byLabel(labels ...card.Label) selector {
	return func(_ []card.Card, candidates []card.Card) card.Card {
		for _, label := range labels {
			for _, candidate := range candidates {
				if candidate.Label() == label {
					return candidate
				}
			}
		}
		return nil
	}
}

// highestNumberInDominantColor picks the highest number card among the
// candidates matching the hand's most frequent color.
func highestNumberInDominantColor() selector {
	return func(hand []card.Card, candidates []card.Card) card.Card {
		dominant := dominantColor(hand)
		var picked card.Card
		pickedNumber := -1
		for _, candidate := range candidates {
			number, ok := candidate.Label().Number()
			if !ok || candidate.Color() != dominant {
				continue
			}
			if number > pickedNumber {
				picked = candidate
				pickedNumber = number
			}
		}
		return picked
	}
}

func lowestNumber() selector {
	return func(_ []card.Card, candidates []card.Card) card.Card {
		var picked card.Card
		pickedNumber := 10
		for _, candidate := range candidates {
			number, ok := candidate.Label().Number()
			if !ok {
				continue
			}
			if number < pickedNumber {
				picked = candidate
				pickedNumber = number
			}
		}
		return picked
	}
}

func highestNumber() selector {
	return func(_ []card.Card, candidates []card.Card) card.Card {
		var picked card.Card
		pickedNumber := -1
		for _, candidate := range candidates {
			number, ok := candidate.Label().Number()
			if !ok {
				continue
			}
			if number > pickedNumber {
				picked = candidate
				pickedNumber = number
			}
		}
		return picked
	}
}

// firstCandidate is the terminal fallback: any legal card beats drawing.
func firstCandidate() selector {
	return func(_ []card.Card, candidates []card.Card) card.Card {
		if len(candidates) == 0 {
			return nil
		}
		return candidates[0]
	}
}

// colorPreference fixes the tie-break order for dominant-color counts.
var colorPreference = []color.Color{color.Red, color.Blue, color.Green, color.Yellow}

// dominantColor is the most frequent concrete color in the hand, red
// when the hand holds no colored card at all.
func dominantColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color() != nil {
			counts[handCard.Color()]++
		}
	}
	var dominant color.Color = color.Red
	dominantCount := 0
	for _, candidate := range colorPreference {
		if counts[candidate] > dominantCount {
			dominant = candidate
			dominantCount = counts[candidate]
		}
	}
	return dominant
}
