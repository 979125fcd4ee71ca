package game

import (
	"fmt"
	"math/rand"

	"github.com/uno-arena/simulator/card"
	"github.com/uno-arena/simulator/card/action"
	"github.com/uno-arena/simulator/card/color"
	"github.com/uno-arena/simulator/event"
)

// Options are the documented policy knobs of a round.
type Options struct {
	// HandSize is the number of cards dealt to each player. Zero means
	// the standard seven.
	HandSize int

	// StackDraws lets a player answer a draw-two with another draw-two
	// (or either draw card with a wild draw four), pushing the grown
	// penalty onward instead of drawing.
	StackDraws bool

	// UnoPenalty is how many cards a player draws for not declaring the
	// one-card warning. Zero means the standard two; a negative value
	// disables the penalty.
	UnoPenalty int
}

func (o Options) withDefaults() Options {
	if o.HandSize == 0 {
		o.HandSize = 7
	}
	if o.UnoPenalty == 0 {
		o.UnoPenalty = 2
	}
	return o
}

// RoundOutcome is what a finished round reports back to the driver.
type RoundOutcome struct {
	Winner    string
	WinnerID  int
	Turns     int
	HandSizes map[string]int
}

// Game drives a single round from deal to an empty hand. It is created
// fresh per round and discarded afterwards; only the players survive
// across rounds.
type Game struct {
	players     *PlayerIterator
	deck        *Deck
	opts        Options
	pendingDraw int
	turns       int
}

func New(players []Player, rng *rand.Rand, opts Options) *Game {
	return &Game{
		players: newPlayerIterator(players),
		deck:    NewDeck(rng),
		opts:    opts.withDefaults(),
	}
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.deck.Pile()
}

// TotalCards counts every card in existence: hands, draw pile, discard
// pile. It must equal DeckSize at every point of a round.
func (g *Game) TotalCards() int {
	total := g.deck.Size() + g.deck.Pile().Size()
	g.players.ForEach(func(player *playerController) {
		total += player.Hand().Size()
	})
	return total
}

// Play runs the round to completion and returns its outcome.
func (g *Game) Play() (RoundOutcome, error) {
	if err := g.deal(); err != nil {
		return RoundOutcome{}, fmt.Errorf("deal: %w", err)
	}
	if err := g.flipFirstCard(); err != nil {
		return RoundOutcome{}, fmt.Errorf("flip first card: %w", err)
	}

	for {
		currentPlayer := g.players.Next()
		g.turns++
		won, err := g.playTurn(currentPlayer)
		if err != nil {
			return RoundOutcome{}, fmt.Errorf("turn %d (%s): %w", g.turns, currentPlayer.Name(), err)
		}
		if won {
			return g.outcome(currentPlayer), nil
		}
	}
}

func (g *Game) deal() error {
	var dealErr error
	g.players.ForEach(func(player *playerController) {
		if dealErr != nil {
			return
		}
		player.Hand().Clear()
		player.saidUno = false
		cards, err := g.deck.Draw(g.opts.HandSize)
		if err != nil {
			dealErr = err
			return
		}
		player.AddCards(cards)
	})
	return dealErr
}

// flipFirstCard starts the discard pile with a non-wild card. Flipped
// wilds go back into the draw pile at a random position. The effect of
// the first card lands on the opening player, as if the dealer had
// played it.
func (g *Game) flipFirstCard() error {
	for {
		firstCard, err := g.deck.DrawOne()
		if err != nil {
			return err
		}
		if firstCard.Label().IsWild() {
			g.deck.PutBack(firstCard)
			continue
		}
		g.deck.Pile().Add(firstCard)
		event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
			Card: firstCard,
		})
		return g.resolveEffects(firstCard, nil)
	}
}

func (g *Game) playTurn(player *playerController) (bool, error) {
	top := g.deck.Pile().Top()
	activeColor := g.deck.Pile().ActiveColor()

	if g.pendingDraw > 0 {
		playedCard, err := g.resolvePendingDraw(player, top, activeColor)
		if err != nil {
			return false, err
		}
		if playedCard == nil {
			return false, nil
		}
		return g.finishPlay(player, playedCard, false)
	}

	playedCard, drawn, err := player.TakeTurn(top, activeColor, g.deck)
	if err != nil {
		return false, err
	}
	if playedCard == nil {
		return false, nil
	}
	return g.finishPlay(player, playedCard, drawn)
}

// resolvePendingDraw lands an accumulated draw penalty: the player
// either stacks another draw card on top of it (when enabled) or draws
// the whole amount and forfeits the turn.
func (g *Game) resolvePendingDraw(player *playerController, top card.Card, activeColor color.Color) (card.Card, error) {
	if g.opts.StackDraws {
		if stackedCard := g.tryStack(player, top, activeColor); stackedCard != nil {
			return stackedCard, nil
		}
	}
	cards, err := g.deck.Draw(g.pendingDraw)
	if err != nil {
		return nil, err
	}
	player.AddCards(cards)
	g.pendingDraw = 0
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
		CardsDrawn: len(cards),
	})
	return nil, nil
}

func (g *Game) tryStack(player *playerController, top card.Card, activeColor color.Color) card.Card {
	stackableCards := stackable(player.Hand().Cards(), top)
	if len(stackableCards) == 0 {
		return nil
	}
	player.player.UpdateGameState(stackableCards, top, activeColor)
	chosenAction := player.player.ChooseAction()
	if chosenAction.IsDraw() {
		return nil
	}
	selectedCard := chosenAction.Card()
	if selectedCard == nil || !contains(stackableCards, selectedCard) {
		return nil
	}
	player.Hand().RemoveCard(selectedCard)
	return selectedCard
}

// stackable lists the cards that may answer a pending draw: draw-two on
// draw-two, wild draw four on either draw card.
func stackable(hand []card.Card, top card.Card) []card.Card {
	var stackableCards []card.Card
	for _, handCard := range hand {
		switch handCard.Label() {
		case card.WildDrawFour:
			stackableCards = append(stackableCards, handCard)
		case card.DrawTwo:
			if top.Label() == card.DrawTwo {
				stackableCards = append(stackableCards, handCard)
			}
		}
	}
	return stackableCards
}

// finishPlay puts the card on the pile and settles everything the play
// triggers. The round ends the moment the hand is empty; effects of the
// winning card are not applied to anyone.
func (g *Game) finishPlay(player *playerController, playedCard card.Card, drawn bool) (bool, error) {
	g.deck.Pile().Add(playedCard)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
		Drawn:      drawn,
	})

	if player.NoCards() {
		event.RoundWon.Emit(event.RoundWonPayload{
			PlayerName: player.Name(),
			Turns:      g.turns,
		})
		return true, nil
	}

	if player.Hand().Size() == 1 {
		if err := g.checkUno(player); err != nil {
			return false, err
		}
	}

	if err := g.resolveEffects(playedCard, player); err != nil {
		return false, err
	}
	return false, nil
}

// checkUno asks for the one-card declaration. There is no interactive
// catch window in a bot round, so a missed call is penalized on the
// spot.
func (g *Game) checkUno(player *playerController) error {
	if player.player.DecideSayUno() {
		player.saidUno = true
		event.UnoCalled.Emit(event.UnoCalledPayload{
			PlayerName: player.Name(),
		})
		return nil
	}
	if g.opts.UnoPenalty <= 0 {
		return nil
	}
	cards, err := g.deck.Draw(g.opts.UnoPenalty)
	if err != nil {
		return err
	}
	player.AddCards(cards)
	event.UnoMissed.Emit(event.UnoMissedPayload{
		PlayerName: player.Name(),
		Penalty:    len(cards),
	})
	return nil
}

// resolveEffects applies the consequences of a played card, atomically,
// before the turn advances. Matching is exhaustive over the closed
// action set.
func (g *Game) resolveEffects(playedCard card.Card, player *playerController) error {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.pendingDraw += cardAction.Amount()
		case action.ReverseTurnsAction:
			g.players.Reverse()
			if g.players.Len() == 2 {
				g.skipNext()
			}
		case action.SkipTurnAction:
			g.skipNext()
		case action.PickColorAction:
			// The first flipped card is never wild, so player is set.
			picked := player.PickColor(playedCard)
			g.deck.Pile().ReplaceTop(card.NewColoredCard(playedCard, picked))
			event.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      picked,
			})
		}
	}
	return nil
}

func (g *Game) skipNext() {
	skippedPlayer := g.players.Skip()
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: skippedPlayer.Name(),
	})
}

func (g *Game) outcome(winner *playerController) RoundOutcome {
	handSizes := make(map[string]int, g.players.Len())
	g.players.ForEach(func(player *playerController) {
		handSizes[player.Name()] = player.Hand().Size()
	})
	return RoundOutcome{
		Winner:    winner.Name(),
		WinnerID:  winner.ID(),
		Turns:     g.turns,
		HandSizes: handSizes,
	}
}
