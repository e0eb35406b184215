package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fiftyMoveLimit is the half-move clock value at which the game is drawn.
const fiftyMoveLimit = 100

// Chess is a State backed by github.com/notnil/chess.
type Chess struct {
	pos       *chess.Position
	halfMoves int
}

// NewChess returns the standard starting position.
func NewChess() *Chess {
	return &Chess{pos: chess.NewGame().Position()}
}

// FromFEN parses a position in Forsyth-Edwards Notation.
func FromFEN(fen string) (*Chess, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.Errorf("fen %q: want at least 4 fields, got %d", fen, len(fields))
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "fen %q", fen)
	}
	c := &Chess{pos: chess.NewGame(opt).Position()}
	if len(fields) > 4 {
		if c.halfMoves, err = strconv.Atoi(fields[4]); err != nil {
			return nil, errors.Wrapf(err, "fen %q: half-move clock", fen)
		}
	}
	return c, nil
}

// MustFEN is FromFEN for positions known to be valid, such as test fixtures.
func MustFEN(fen string) *Chess {
	c, err := FromFEN(fen)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return c
}

func (c *Chess) Turn() chess.Color   { return c.pos.Turn() }
func (c *Chess) Board() *chess.Board { return c.pos.Board() }
func (c *Chess) FEN() string         { return c.pos.String() }
func (c *Chess) String() string      { return c.pos.String() }

// ValidMoves returns the legal moves for the side to move.
func (c *Chess) ValidMoves() []Move {
	valid := c.pos.ValidMoves()
	retVal := make([]Move, len(valid))
	for i, m := range valid {
		retVal[i] = fromChess(m)
	}
	return retVal
}

// Apply plays m and returns the resulting position. It panics when m is not
// legal here, since only ValidMoves may produce moves.
func (c *Chess) Apply(m Move) State {
	for _, cm := range c.pos.ValidMoves() {
		if fromChess(cm) != m {
			continue
		}
		next := &Chess{pos: c.pos.Update(cm), halfMoves: c.halfMoves + 1}
		if c.IsCapture(m) || c.pos.Board().Piece(m.From).Type() == chess.Pawn {
			next.halfMoves = 0
		}
		return next
	}
	panic(fmt.Sprintf("illegal move %v in %v", m, c.FEN()))
}

// Status classifies the position. Checkmate takes precedence over the
// fifty-move rule.
func (c *Chess) Status() Status {
	if len(c.pos.ValidMoves()) == 0 {
		if c.InCheck() {
			return Decisive
		}
		return Drawn
	}
	if c.halfMoves >= fiftyMoveLimit {
		return Drawn
	}
	return Ongoing
}

func (c *Chess) InCheck() bool { return len(c.Checkers()) > 0 }

// Checkers lists the squares of the pieces giving check to the side to move.
func (c *Chess) Checkers() []chess.Square {
	b := c.pos.Board()
	king, ok := kingSquare(b, c.pos.Turn())
	if !ok {
		return nil
	}
	return attackers(b, king, c.pos.Turn().Other())
}

// IsCapture reports whether m removes an enemy piece, en passant included.
func (c *Chess) IsCapture(m Move) bool {
	b := c.pos.Board()
	if b.Piece(m.To) != chess.NoPiece {
		return true
	}
	return b.Piece(m.From).Type() == chess.Pawn && m.From.File() != m.To.File()
}

func fromChess(m *chess.Move) Move {
	return Move{From: m.S1(), To: m.S2(), Promo: m.Promo()}
}
