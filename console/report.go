package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/uno-arena/simulator/sim"
)

// PrintStats renders the aggregate statistics as a console table.
func PrintStats(out io.Writer, stats *sim.Stats) {
	header := color.New(color.Bold).SprintFunc()

	fmt.Fprintln(out, header("Simulation results"))
	fmt.Fprintf(out, "Rounds played: %d\n", stats.Rounds)
	fmt.Fprintf(out, "Average turns per round: %.1f\n", stats.AvgTurns)
	fmt.Fprintln(out, strings.Repeat("-", 62))
	fmt.Fprintf(out, "%-24s %8s %10s %16s\n", "Player", "Wins", "Win rate", "Avg hand (loss)")
	for _, player := range stats.Players {
		fmt.Fprintf(out, "%-24s %8d %9.1f%% %16.2f\n",
			player.Name, player.Wins, player.WinRate*100, player.AvgHandSizeOnLoss)
	}
	fmt.Fprintln(out, strings.Repeat("-", 62))
}
