package mixer

import (
	"context"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/chessmixer/game"
)

// Outcome of a game from one agent's point of view.
type Outcome uint8

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "UNKNOWN OUTCOME"
}

// Result of a finished game.
type Result struct {
	Winner      chess.Color // chess.NoColor for a draw
	Moves       []game.Move
	Final       game.State
	Adjudicated bool // stopped by the ply limit rather than by the rules
}

// For reports the outcome from the point of view of the given side.
func (r Result) For(c chess.Color) Outcome {
	switch r.Winner {
	case chess.NoColor:
		return Draw
	case c:
		return Win
	}
	return Loss
}

// Arena represents a game between two agents.
type Arena struct {
	game         game.State
	white, black *Agent
	maxPlies     int
}

// MakeArena makes an arena given a starting position. maxPlies <= 0 means the
// game is only stopped by the rules.
func MakeArena(g game.State, white, black *Agent, maxPlies int) Arena {
	return Arena{
		game:     g,
		white:    white,
		black:    black,
		maxPlies: maxPlies,
	}
}

// State of the game
func (a *Arena) State() game.State { return a.game }

func (a *Arena) current() *Agent {
	if a.game.Turn() == chess.White {
		return a.white
	}
	return a.black
}

// Play plays the game to the end and records the result in both agents'
// statistics. The context is checked between plies.
func (a *Arena) Play(ctx context.Context) (Result, error) {
	var r Result
	for a.game.Status() == game.Ongoing {
		if err := ctx.Err(); err != nil {
			return r, errors.WithStack(err)
		}
		if a.maxPlies > 0 && len(r.Moves) >= a.maxPlies {
			r.Adjudicated = true
			break
		}
		player := a.current()
		m, ok := player.Search(a.game)
		if !ok {
			return r, errors.Errorf("%s found no move in ongoing position %s", player.Name(), a.game.FEN())
		}
		r.Moves = append(r.Moves, m)
		a.game = a.game.Apply(m)
	}

	r.Final = a.game
	r.Winner = chess.NoColor
	if a.game.Status() == game.Decisive {
		r.Winner = a.game.Turn().Other()
	}
	a.white.record(r.For(chess.White))
	a.black.record(r.For(chess.Black))

	log.Info().
		Str("white", a.white.Name()).
		Str("black", a.black.Name()).
		Int("plies", len(r.Moves)).
		Bool("adjudicated", r.Adjudicated).
		Msg(game.Describe(a.game))
	return r, nil
}
