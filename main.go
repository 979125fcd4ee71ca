package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/simulator/bot"
	"github.com/uno-arena/simulator/console"
	"github.com/uno-arena/simulator/game"
	"github.com/uno-arena/simulator/live"
	"github.com/uno-arena/simulator/sim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaults can be overridden through the environment; flags win over
// both.
type defaults struct {
	Games      int    `env:"UNOSIM_GAMES" envDefault:"1000"`
	Bots       string `env:"UNOSIM_BOTS" envDefault:"DemonHomeBot,WildFirstBot"`
	Seed       int64  `env:"UNOSIM_SEED" envDefault:"1"`
	HandSize   int    `env:"UNOSIM_HAND_SIZE" envDefault:"7"`
	StackDraws bool   `env:"UNOSIM_STACK_DRAWS" envDefault:"false"`
	UnoPenalty int    `env:"UNOSIM_UNO_PENALTY" envDefault:"2"`
	Listen     string `env:"UNOSIM_LISTEN"`
}

func main() {
	if err := run(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run() error {
	var def defaults
	if err := env.Parse(&def); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	var (
		games      = flag.Int("games", def.Games, "number of rounds to simulate")
		bots       = flag.String("bots", def.Bots, "comma-separated bot kinds: "+strings.Join(bot.Kinds(), ", "))
		names      = flag.String("names", "", "comma-separated custom bot names (must match -bots)")
		seeds      = flag.String("seeds", "", "comma-separated per-bot seeds (must match -bots)")
		seed       = flag.Int64("seed", def.Seed, "deck shuffle seed; a fixed seed reproduces the run")
		handSize   = flag.Int("hand-size", def.HandSize, "cards dealt to each player")
		stackDraws = flag.Bool("stack", def.StackDraws, "allow stacking draw-two/draw-four penalties")
		unoPenalty = flag.Int("uno-penalty", def.UnoPenalty, "cards drawn for a missed UNO call, negative disables")
		output     = flag.String("output", "", "write results to this file")
		format     = flag.String("format", "json", "output format: json or csv")
		quiet      = flag.Bool("quiet", false, "suppress console output")
		verbose    = flag.Bool("verbose", false, "narrate every turn (noisy beyond a few rounds)")
		listen     = flag.String("listen", def.Listen, "serve the live spectator feed on this address, e.g. :8080")
	)
	flag.Parse()

	if *quiet {
		logrus.SetLevel(logrus.ErrorLevel)
	}

	players, err := buildRoster(*bots, *names, *seeds)
	if err != nil {
		return err
	}

	msg := console.NewMessageWriter(os.Stdout)
	if !*quiet {
		msg.Welcome()
		fmt.Printf("Configuration: %d bots, %d games, seed %d\n", len(players), *games, *seed)
		for _, player := range players {
			fmt.Printf("  - %s\n", player.Name())
		}
	}
	if *verbose && !*quiet {
		console.NewObserver(os.Stdout).Attach()
	}
	if *listen != "" {
		feed := live.NewServer(*listen)
		feed.Attach()
		go func() {
			if err := feed.Serve(); err != nil {
				logrus.WithError(err).Error("spectator feed stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := sim.Run(ctx, sim.Config{
		Games:      *games,
		Players:    players,
		HandSize:   *handSize,
		StackDraws: *stackDraws,
		UnoPenalty: *unoPenalty,
		Seed:       *seed,
	})
	if err != nil && stats == nil {
		return err
	}
	if err != nil {
		logrus.Warnf("simulation interrupted after %d rounds", stats.Rounds)
	}

	if !*quiet {
		console.PrintStats(os.Stdout, stats)
	}
	if *output != "" {
		if err := saveStats(stats, *output, *format); err != nil {
			return err
		}
		if !*quiet {
			fmt.Printf("Results saved to: %s\n", *output)
		}
	}
	return nil
}

func buildRoster(kindList, nameList, seedList string) ([]game.Player, error) {
	kinds := splitList(kindList)
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: no bots given", sim.ErrConfiguration)
	}
	names := splitList(nameList)
	if len(names) > 0 && len(names) != len(kinds) {
		return nil, fmt.Errorf("%w: %d names for %d bots", sim.ErrConfiguration, len(names), len(kinds))
	}
	seedStrings := splitList(seedList)
	if len(seedStrings) > 0 && len(seedStrings) != len(kinds) {
		return nil, fmt.Errorf("%w: %d seeds for %d bots", sim.ErrConfiguration, len(seedStrings), len(kinds))
	}

	players := make([]game.Player, 0, len(kinds))
	for i, kind := range kinds {
		name := fmt.Sprintf("%s_%d", kind, i+1)
		if len(names) > 0 {
			name = names[i]
		}
		botSeed := int64(i + 1)
		if len(seedStrings) > 0 {
			parsed, err := strconv.ParseInt(seedStrings[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad seed '%s'", sim.ErrConfiguration, seedStrings[i])
			}
			botSeed = parsed
		}
		player, err := bot.ByName(kind, name, i+1, botSeed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sim.ErrConfiguration, err)
		}
		players = append(players, player)
	}
	return players, nil
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func saveStats(stats *sim.Stats, path, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		_, err = file.Write(data)
		return err
	case "csv":
		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"name", "id", "wins", "win_rate", "avg_hand_size_on_loss"}); err != nil {
			return err
		}
		for _, player := range stats.Players {
			record := []string{
				player.Name,
				strconv.Itoa(player.ID),
				strconv.Itoa(player.Wins),
				strconv.FormatFloat(player.WinRate, 'f', 4, 64),
				strconv.FormatFloat(player.AvgHandSizeOnLoss, 'f', 2, 64),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}
