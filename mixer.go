// Package mixer composes search, scoring and selection strategies into a chess
// playing agent, and plays agents against each other.
package mixer

import (
	"context"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/chessmixer/game"
)

// Summary of a match, from the first agent's point of view.
type Summary struct {
	Wins, Loss, Draw int
	// Results are in game order. A plays White in even-numbered games.
	Results []Result
}

// Match plays conf.Games games between a and b, alternating colours, with at
// most conf.Concurrency games in flight. The agents' statistics are reset
// first.
func Match(ctx context.Context, a, b *Agent, conf ArenaConfig) (Summary, error) {
	if err := conf.Validate(); err != nil {
		return Summary{}, errors.WithMessage(err, "invalid arena config")
	}
	a.resetStats()
	b.resetStats()

	results := make([]Result, conf.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Concurrency)
	for i := 0; i < conf.Games; i++ {
		white, black := a, b
		if i%2 == 1 {
			white, black = b, a
		}
		g.Go(func() error {
			// each game parses its own start position: positions are not
			// safe to share between goroutines
			start, err := game.FromFEN(conf.StartFEN)
			if err != nil {
				return err
			}
			log.Debug().Int("game", i).Str("white", white.Name()).Str("black", black.Name()).Msg("starting game")
			arena := MakeArena(start, white, black, conf.MaxPlies)
			r, err := arena.Play(ctx)
			if err != nil {
				return errors.WithMessagef(err, "game %d", i)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	outcome := func(i int) Outcome {
		if i%2 == 0 {
			return results[i].For(chess.White)
		}
		return results[i].For(chess.Black)
	}
	outcomes := lo.Times(conf.Games, outcome)
	s := Summary{
		Wins:    lo.Count(outcomes, Win),
		Loss:    lo.Count(outcomes, Loss),
		Draw:    lo.Count(outcomes, Draw),
		Results: results,
	}
	log.Info().
		Str("a", a.Name()).
		Str("b", b.Name()).
		Int("wins", s.Wins).
		Int("loss", s.Loss).
		Int("draw", s.Draw).
		Msg("match finished")
	return s, nil
}
