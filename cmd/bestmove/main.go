// Command bestmove scores every legal move of a position and prints the move
// the configured engine would play.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	mixer "github.com/chessmixer"
	"github.com/chessmixer/config"
	"github.com/chessmixer/game"
	"github.com/chessmixer/search"
	"github.com/chessmixer/trace"
)

var (
	fenFlag    = flag.String("fen", game.StartFEN, "position to search")
	movesFlag  = flag.String("moves", "", "space separated UCI moves to play from -fen first")
	configPath = flag.String("config", "", "config file (yaml, json or toml)")
	dotPath    = flag.String("dot", "", "write the search tree to this file as Graphviz DOT")
	dotLimit   = flag.Int("dot_limit", 5000, "maximum number of nodes written to -dot, 0 for all")
)

func main() {
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if err := config.SetupLogging(conf); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	start, err := game.FromFEN(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	s, err := game.Play(start, strings.Fields(*movesFlag)...)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	agent, err := mixer.NewAgentFromConfig(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	var g *trace.Graph
	if *dotPath != "" {
		g = trace.New(*dotLimit)
		e, _ := mixer.NewEvaluator(conf.SearchConf)
		agent.SetEvaluator(search.Traced(e, g))
	}

	fmt.Printf("%s\n%s\n\n", s.FEN(), game.Describe(s))
	log.Info().Str("search", mixer.Titles[conf.SearchConf.Algorithm]).
		Int("depth", conf.SearchConf.Depth).
		Str("score", mixer.Titles[conf.ScoreConf.Function]).
		Str("chooser", mixer.Titles[conf.ChooserConf.Policy]).
		Msg("searching")

	scored := agent.Evaluate(s)
	for _, sm := range search.SortByScore(scored) {
		fmt.Printf("%-6v %8.2f\n", sm.Move, sm.Score)
	}
	if m, ok := agent.Choose(scored); ok {
		fmt.Printf("\nbestmove %v\n", m)
	} else {
		fmt.Println("\nbestmove (none)")
	}

	if g == nil {
		return
	}
	out, err := g.Render()
	if err != nil {
		log.Fatal().Err(err).Msg("rendering search tree")
	}
	if err := os.WriteFile(*dotPath, []byte(out), 0o644); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	log.Info().Int("nodes", g.Len()).Int("dropped", g.Dropped()).Str("path", *dotPath).Msg("wrote search tree")
}
