package sim

import "github.com/uno-arena/simulator/game"

// Stats is the aggregate handed to reporting collaborators. The schema
// is stable: console printing, JSON/CSV export and any plotting consume
// this and nothing else.
type Stats struct {
	Rounds   int           `json:"rounds"`
	AvgTurns float64       `json:"avg_turns"`
	Players  []PlayerStats `json:"players"`
}

type PlayerStats struct {
	Name              string  `json:"name"`
	ID                int     `json:"id"`
	Wins              int     `json:"wins"`
	WinRate           float64 `json:"win_rate"`
	AvgHandSizeOnLoss float64 `json:"avg_hand_size_on_loss"`
}

// aggregator folds round outcomes into the statistics. It is the single
// writer; nothing mutates it during a round.
type aggregator struct {
	names      []string
	ids        map[string]int
	wins       map[string]int
	losses     map[string]int
	lossHands  map[string]int
	rounds     int
	turnsTotal int
}

func newAggregator(players []game.Player) *aggregator {
	agg := &aggregator{
		ids:       make(map[string]int, len(players)),
		wins:      make(map[string]int, len(players)),
		losses:    make(map[string]int, len(players)),
		lossHands: make(map[string]int, len(players)),
	}
	for _, player := range players {
		agg.names = append(agg.names, player.Name())
		agg.ids[player.Name()] = player.ID()
	}
	return agg
}

func (a *aggregator) record(outcome game.RoundOutcome) {
	a.rounds++
	a.turnsTotal += outcome.Turns
	a.wins[outcome.Winner]++
	for name, handSize := range outcome.HandSizes {
		if name == outcome.Winner {
			continue
		}
		a.losses[name]++
		a.lossHands[name] += handSize
	}
}

func (a *aggregator) stats() *Stats {
	stats := &Stats{
		Rounds:  a.rounds,
		Players: make([]PlayerStats, 0, len(a.names)),
	}
	if a.rounds > 0 {
		stats.AvgTurns = float64(a.turnsTotal) / float64(a.rounds)
	}
	for _, name := range a.names {
		playerStats := PlayerStats{
			Name: name,
			ID:   a.ids[name],
			Wins: a.wins[name],
		}
		if a.rounds > 0 {
			playerStats.WinRate = float64(a.wins[name]) / float64(a.rounds)
		}
		if a.losses[name] > 0 {
			playerStats.AvgHandSizeOnLoss = float64(a.lossHands[name]) / float64(a.losses[name])
		}
		stats.Players = append(stats.Players, playerStats)
	}
	return stats
}
