package game

import (
	"fmt"

	"github.com/notnil/chess"
)

// Move encodes a chess move as its source square, destination square and
// promotion piece. Moves are comparable with ==. String gives UCI notation.
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

// NoMove is the zero Move. It is never legal.
var NoMove = Move{}

func (m Move) String() string {
	if m.Promo == chess.NoPieceType {
		return m.From.String() + m.To.String()
	}
	return m.From.String() + m.To.String() + promoLetter(m.Promo)
}

// Status classifies a position.
type Status uint8

const (
	Ongoing Status = iota
	Drawn
	// Decisive means the side to move has lost: no legal moves while in check.
	Decisive
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Drawn:
		return "Drawn"
	case Decisive:
		return "Decisive"
	}
	return "UNKNOWN STATUS"
}

// State is an immutable position snapshot. Apply never modifies the receiver,
// so sibling branches of a search can share a parent freely.
type State interface {
	Turn() chess.Color    // Turn returns the color to move next.
	Board() *chess.Board  // return board state. Callers must not modify it.
	ValidMoves() []Move   // legal moves for the side to move, in generation order.
	Apply(m Move) State   // returns the position after m. m must be legal.
	Status() Status       // terminal classification.
	InCheck() bool        // is the side to move in check?
	Checkers() []chess.Square
	IsCapture(m Move) bool
	FEN() string
}

// Describe renders the status line shown to players.
func Describe(s State) string {
	switch s.Status() {
	case Drawn:
		return "Draw"
	case Decisive:
		return fmt.Sprintf("%s wins", colorName(s.Turn().Other()))
	}
	return fmt.Sprintf("%s to move", colorName(s.Turn()))
}

func colorName(c chess.Color) string {
	switch c {
	case chess.White:
		return "White"
	case chess.Black:
		return "Black"
	}
	return "Nobody"
}
