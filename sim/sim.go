// Package sim runs many independent rounds over a fixed roster and
// aggregates the outcomes. It performs no I/O; reporting is someone
// else's job.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/uno-arena/simulator/game"
)

// ErrConfiguration marks a roster or parameter problem. It is surfaced
// before any round starts, never mid-simulation.
var ErrConfiguration = errors.New("invalid simulation configuration")

const (
	minPlayers = 2
	maxPlayers = 10
)

// Config is the whole configuration surface of the driver. Players are
// already-constructed instances; their internal seeds are theirs alone.
type Config struct {
	Games      int
	Players    []game.Player
	HandSize   int
	StackDraws bool
	UnoPenalty int

	// Seed derives every round's deck shuffle: round r uses Seed+r. A
	// fixed seed and roster reproduce the whole simulation bit for bit.
	Seed int64
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: game count must be positive, got %d", ErrConfiguration, c.Games)
	}
	if len(c.Players) < minPlayers || len(c.Players) > maxPlayers {
		return fmt.Errorf("%w: need %d to %d players, got %d", ErrConfiguration, minPlayers, maxPlayers, len(c.Players))
	}
	names := make(map[string]bool, len(c.Players))
	ids := make(map[int]bool, len(c.Players))
	for _, player := range c.Players {
		if player.Name() == "" {
			return fmt.Errorf("%w: player with empty name", ErrConfiguration)
		}
		if names[player.Name()] {
			return fmt.Errorf("%w: duplicate player name '%s'", ErrConfiguration, player.Name())
		}
		if ids[player.ID()] {
			return fmt.Errorf("%w: duplicate player id %d", ErrConfiguration, player.ID())
		}
		names[player.Name()] = true
		ids[player.ID()] = true
	}
	return nil
}

// Run plays cfg.Games rounds sequentially and returns the aggregate. A
// canceled context stops before the next round; the statistics gathered
// so far are returned alongside the context's error.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	agg := newAggregator(cfg.Players)
	opts := game.Options{
		HandSize:   cfg.HandSize,
		StackDraws: cfg.StackDraws,
		UnoPenalty: cfg.UnoPenalty,
	}

	for round := 0; round < cfg.Games; round++ {
		select {
		case <-ctx.Done():
			return agg.stats(), ctx.Err()
		default:
		}

		rng := rand.New(rand.NewSource(cfg.Seed + int64(round)))
		outcome, err := game.New(cfg.Players, rng, opts).Play()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		agg.record(outcome)
	}
	return agg.stats(), nil
}
