// Command match plays two configured engines against each other.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	mixer "github.com/chessmixer"
	"github.com/chessmixer/config"
	"github.com/chessmixer/game"
)

var (
	configA     = flag.String("config", "", "config file for the first engine; its arena settings are used")
	configB     = flag.String("opponent", "", "config file for the second engine")
	games       = flag.Int("games", 0, "number of games, overrides the config")
	concurrency = flag.Int("concurrency", 0, "games played at once, overrides the config")
	showMoves   = flag.Bool("moves", false, "print the moves of every game")
)

func load(path, fallbackName string) (mixer.Config, *mixer.Agent) {
	conf, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("loading config")
	}
	if path == "" {
		conf.Name = fallbackName
	}
	agent, err := mixer.NewAgentFromConfig(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	return conf, agent
}

func main() {
	flag.Parse()

	confA, a := load(*configA, "A")
	_, b := load(*configB, "B")
	if err := config.SetupLogging(confA); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	arena := confA.ArenaConf
	if *games > 0 {
		arena.Games = *games
	}
	if *concurrency > 0 {
		arena.Concurrency = *concurrency
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := mixer.Match(ctx, a, b, arena)
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}

	for i, r := range summary.Results {
		white, black := a.Name(), b.Name()
		if i%2 == 1 {
			white, black = black, white
		}
		status := game.Describe(r.Final)
		if r.Adjudicated {
			status = "Draw by ply limit"
		}
		fmt.Printf("game %3d  %s vs %s: %s in %d plies\n", i+1, white, black, status, len(r.Moves))
		if *showMoves {
			fmt.Printf("          %v\n", r.Moves)
		}
	}
	fmt.Printf("\n%s: %d wins, %d losses, %d draws against %s\n",
		a.Name(), summary.Wins, summary.Loss, summary.Draw, b.Name())
}
