// Selfplay pits two move-selection engines against each other and tallies
// the outcomes, which doubles as an end-to-end exercise of the rules engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"boxline/pkg/models/match"
	"boxline/pkg/strategy"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

var (
	gamesConf    = flag.Int("games", 100, "number of games to play")
	gridSizeConf = flag.Int("size", 6, "grid size")
	firstConf    = flag.String("first", "greedy", "strategy for player 0: "+strings.Join(strategy.Names(), "|"))
	secondConf   = flag.String("second", "random", "strategy for player 1")
)

func newBar(length int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(length,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func main() {
	flag.Parse()

	engines := make([]strategy.Strategy, 2)
	for i, name := range []string{*firstConf, *secondConf} {
		var ok bool
		if engines[i], ok = strategy.ByName(name); !ok {
			log.Fatalf("unknown strategy %q, want one of %s", name, strings.Join(strategy.Names(), ", "))
		}
	}

	wins := make([]int, 2)
	draws := 0

	bar := newBar(*gamesConf, fmt.Sprintf("%s vs %s", *firstConf, *secondConf))
	for game := 0; game < *gamesConf; game++ {
		// alternate who moves first so neither side keeps the opening edge
		seat := make([]int, 2)
		seat[game%2] = 0
		seat[1-game%2] = 1

		winner := play(engines, seat)
		if winner == match.NoWinner {
			draws++
		} else {
			wins[winner]++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Printf("%s %s: %v\n", aurora.Green(*firstConf).String(), "wins", wins[0])
	fmt.Printf("%s %s: %v\n", aurora.Red(*secondConf).String(), "wins", wins[1])
	fmt.Printf("draws: %v\n", draws)
}

// play runs one full game; seat maps engine index to player index.
func play(engines []strategy.Strategy, seat []int) int {
	s := match.NewState(*gridSizeConf, 2).Start()

	for !s.GameOver {
		engine := engines[0]
		if s.CurrentPlayer == seat[1] {
			engine = engines[1]
		}

		e, ok := engine.SelectMove(s, s.CurrentPlayer)
		if !ok {
			break
		}

		var err error
		if s, err = s.Apply(e, s.CurrentPlayer); err != nil {
			log.Fatalf("engine %s produced an illegal move: %v", engine.Name(), err)
		}
	}

	if s.Winner == match.NoWinner {
		return match.NoWinner
	}
	// translate the winning player index back to the engine that held it
	if s.Winner == seat[0] {
		return 0
	}
	return 1
}
