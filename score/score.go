// Package score assigns heuristic values to positions.
package score

import (
	"github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/chessmixer/game"
)

// Scorer always returns a score from White's perspective: positive is good
// for White, whoever is to move.
type Scorer interface {
	Score(s game.State) float64
}

// Config selects a scorer and its parameters.
type Config struct {
	Function    string      `json:"function" mapstructure:"function"`
	PieceValues PieceValues `json:"piece_values" mapstructure:"piece_values"`
}

func DefaultConfig() Config {
	return Config{Function: "material", PieceValues: DefaultPieceValues()}
}

// PieceValues configures the material value of each piece type. The king is
// never counted.
type PieceValues struct {
	Pawn   float64 `json:"pawn" mapstructure:"pawn"`
	Knight float64 `json:"knight" mapstructure:"knight"`
	Bishop float64 `json:"bishop" mapstructure:"bishop"`
	Rook   float64 `json:"rook" mapstructure:"rook"`
	Queen  float64 `json:"queen" mapstructure:"queen"`
}

func DefaultPieceValues() PieceValues {
	return PieceValues{
		Pawn:   1,
		Knight: 3,
		Bishop: 3.5,
		Rook:   5,
		Queen:  9,
	}
}

// Validate returns every invalid value at once.
func (v PieceValues) Validate() error {
	var errs error
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"pawn", v.Pawn}, {"knight", v.Knight}, {"bishop", v.Bishop}, {"rook", v.Rook}, {"queen", v.Queen},
	} {
		if p.value < 0 {
			errs = multierror.Append(errs, errors.Errorf("piece value %s must not be negative, got %v", p.name, p.value))
		}
	}
	return errs
}

// Max is the largest single piece value.
func (v PieceValues) Max() float64 {
	max := v.Pawn
	for _, x := range []float64{v.Knight, v.Bishop, v.Rook, v.Queen} {
		if x > max {
			max = x
		}
	}
	return max
}

// Of returns the value of a piece type.
func (v PieceValues) Of(t chess.PieceType) float64 {
	switch t {
	case chess.Pawn:
		return v.Pawn
	case chess.Knight:
		return v.Knight
	case chess.Bishop:
		return v.Bishop
	case chess.Rook:
		return v.Rook
	case chess.Queen:
		return v.Queen
	}
	return 0
}

// Material is White's material minus Black's.
type Material struct {
	Values PieceValues
}

// NewMaterial returns a Material scorer using the default piece values.
func NewMaterial() Material { return Material{Values: DefaultPieceValues()} }

func (m Material) Score(s game.State) float64 {
	var score float64
	b := s.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.Piece(sq)
		switch p.Color() {
		case chess.White:
			score += m.Values.Of(p.Type())
		case chess.Black:
			score -= m.Values.Of(p.Type())
		}
	}
	return score
}
