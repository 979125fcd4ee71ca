package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/action"
	"github.com/uno-arena/simulator/card/color"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, card.Five, card.NewNumberCard(color.Red, 5).Label())
	assert.Equal(t, card.Skip, card.NewSkipCard(color.Red).Label())
	assert.Equal(t, card.Reverse, card.NewReverseCard(color.Red).Label())
	assert.Equal(t, card.DrawTwo, card.NewDrawTwoCard(color.Red).Label())
	assert.Equal(t, card.Wild, card.NewWildCard().Label())
	assert.Equal(t, card.WildDrawFour, card.NewWildDrawFourCard().Label())
}

func TestActions(t *testing.T) {
	assert.Empty(t, card.NewNumberCard(color.Red, 5).Actions())
	assert.Equal(t, []action.Action{
		action.NewSkipTurnAction(),
	}, card.NewSkipCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewReverseTurnsAction(),
	}, card.NewReverseCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewDrawCardsAction(2),
	}, card.NewDrawTwoCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewPickColorAction(),
	}, card.NewWildCard().Actions())
	assert.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWildDrawFourCard().Actions())
}

func TestWildCardsHaveNoIntrinsicColor(t *testing.T) {
	assert.Nil(t, card.NewWildCard().Color())
	assert.Nil(t, card.NewWildDrawFourCard().Color())
}

func TestEqual(t *testing.T) {
	scenarios := []struct {
		description    string
		firstCard      card.Card
		secondCard     card.Card
		expectedResult bool
	}{
		{
			description:    "same_number_and_color",
			firstCard:      card.NewNumberCard(color.Red, 5),
			secondCard:     card.NewNumberCard(color.Red, 5),
			expectedResult: true,
		},
		{
			description:    "same_number_different_color",
			firstCard:      card.NewNumberCard(color.Red, 5),
			secondCard:     card.NewNumberCard(color.Blue, 5),
			expectedResult: false,
		},
		{
			description:    "same_color_different_number",
			firstCard:      card.NewNumberCard(color.Red, 5),
			secondCard:     card.NewNumberCard(color.Red, 6),
			expectedResult: false,
		},
		{
			description:    "skip_cards_of_the_same_color",
			firstCard:      card.NewSkipCard(color.Green),
			secondCard:     card.NewSkipCard(color.Green),
			expectedResult: true,
		},
		{
			description:    "skip_and_reverse_of_the_same_color",
			firstCard:      card.NewSkipCard(color.Green),
			secondCard:     card.NewReverseCard(color.Green),
			expectedResult: false,
		},
		{
			description:    "two_wild_cards",
			firstCard:      card.NewWildCard(),
			secondCard:     card.NewWildCard(),
			expectedResult: true,
		},
		{
			description:    "wild_and_wild_draw_four",
			firstCard:      card.NewWildCard(),
			secondCard:     card.NewWildDrawFourCard(),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			assert.Equal(t, scenario.expectedResult, scenario.firstCard.Equal(scenario.secondCard))
			assert.Equal(t, scenario.expectedResult, scenario.secondCard.Equal(scenario.firstCard))
		})
	}
}

func TestColoredCard(t *testing.T) {
	wildCard := card.NewWildCard()
	coloredCard := card.NewColoredCard(wildCard, color.Green)

	t.Run("takes_the_picked_color", func(t *testing.T) {
		require.Equal(t, color.Green, coloredCard.Color())
	})

	t.Run("keeps_the_wrapped_card_label_and_actions", func(t *testing.T) {
		require.Equal(t, card.Wild, coloredCard.Label())
		require.Equal(t, wildCard.Actions(), coloredCard.Actions())
	})

	t.Run("equals_its_wrapped_card", func(t *testing.T) {
		require.True(t, coloredCard.Equal(wildCard))
		require.False(t, coloredCard.Equal(card.NewWildDrawFourCard()))
	})

	t.Run("unwraps_to_the_original_card", func(t *testing.T) {
		require.Equal(t, wildCard, coloredCard.Unwrap())
	})
}
