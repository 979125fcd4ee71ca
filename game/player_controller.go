package game

import (
	"github.com/sirupsen/logrus"
	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/event"
)

// playerController pairs a player with the engine-side bookkeeping for
// one round. It mediates every decision, so contract breaches degrade
// into forced draws instead of corrupting the round.
type playerController struct {
	player  Player
	saidUno bool
}

func newPlayerController(player Player) *playerController {
	return &playerController{player: player}
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) ID() int {
	return c.player.ID()
}

func (c *playerController) Hand() *Hand {
	return c.player.Hand()
}

func (c *playerController) AddCards(cards []card.Card) {
	c.Hand().AddCards(cards)
	if c.Hand().Size() != 1 {
		c.saidUno = false
	}
}

func (c *playerController) NoCards() bool {
	return c.Hand().Empty()
}

// TakeTurn runs one regular decision: compute the playable set, let the
// player observe and choose, validate the choice. The returned card is
// nil when the player ends up drawing and passing; the bool marks a card
// played straight off the deck.
func (c *playerController) TakeTurn(top card.Card, active color.Color, deck *Deck) (card.Card, bool, error) {
	playableCards := c.Hand().PlayableCards(top, active)
	c.player.UpdateGameState(playableCards, top, active)

	if len(playableCards) == 0 {
		return c.tryTopDecking(top, active, deck)
	}

	chosenAction := c.player.ChooseAction()
	if chosenAction.IsDraw() {
		return c.tryTopDecking(top, active, deck)
	}

	selectedCard := chosenAction.Card()
	if selectedCard == nil || !contains(playableCards, selectedCard) {
		c.reportBreach(selectedCard, top, active)
		return c.tryTopDecking(top, active, deck)
	}

	c.Hand().RemoveCard(selectedCard)
	return selectedCard, false, nil
}

// tryTopDecking draws exactly one card and, if it is playable and the
// player wants to, plays it on the spot. One forced draw per turn, never
// more.
func (c *playerController) tryTopDecking(top card.Card, active color.Color, deck *Deck) (card.Card, bool, error) {
	drawnCard, err := deck.DrawOne()
	if err != nil {
		return nil, false, err
	}
	c.AddCards([]card.Card{drawnCard})
	if CanPlayOn(drawnCard, top, active) && c.player.ShouldPlayDrawnCard(drawnCard) {
		c.Hand().RemoveCard(drawnCard)
		return drawnCard, true, nil
	}
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: c.Name(),
		CardsDrawn: 1,
	})
	return nil, false, nil
}

// PickColor asks the player for a color after a wild play. A missing or
// wild answer is a contract breach, recovered with red.
func (c *playerController) PickColor(wildCard card.Card) color.Color {
	picked := c.player.ChooseColor(wildCard)
	if picked == nil {
		logger.WithFields(logrus.Fields{
			"player": c.Name(),
			"error":  ErrIllegalAction,
		}).Warn("no color chosen for a wild card, falling back to red")
		picked = color.Red
	}
	return picked
}

func (c *playerController) reportBreach(selectedCard card.Card, top card.Card, active color.Color) {
	err := ErrIllegalAction
	if selectedCard != nil && c.Hand().Contains(selectedCard) {
		err = ErrInvalidPlay
	}
	fields := logrus.Fields{
		"player": c.Name(),
		"error":  err,
	}
	if selectedCard != nil {
		fields["label"] = selectedCard.Label().String()
	}
	logger.WithFields(fields).Warn("rejected play, forcing a draw")
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, card := range cards {
		if card.Equal(searchedCard) {
			return true
		}
	}
	return false
}
