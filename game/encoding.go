package game

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

var (
	ErrMalformedMove = errors.New("malformed UCI move")
	ErrIllegalMove   = errors.New("illegal move")
)

var promotions = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

func promoLetter(t chess.PieceType) string {
	for k, v := range promotions {
		if v == t {
			return string(k)
		}
	}
	return ""
}

func parseSquare(s string) (chess.Square, bool) {
	if len(s) != 2 {
		return chess.NoSquare, false
	}
	return squareAt(int(s[0]-'a'), int(s[1]-'1'))
}

// ParseMove decodes a UCI move (e2e4, e7e8q) and checks it is legal in s.
func ParseMove(s State, uci string) (Move, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	if len(uci) != 4 && len(uci) != 5 {
		return NoMove, errors.Wrapf(ErrMalformedMove, "%q", uci)
	}
	from, ok1 := parseSquare(uci[0:2])
	to, ok2 := parseSquare(uci[2:4])
	if !ok1 || !ok2 {
		return NoMove, errors.Wrapf(ErrMalformedMove, "%q", uci)
	}
	m := Move{From: from, To: to}
	if len(uci) == 5 {
		promo, ok := promotions[uci[4]]
		if !ok {
			return NoMove, errors.Wrapf(ErrMalformedMove, "%q: bad promotion piece", uci)
		}
		m.Promo = promo
	}
	for _, valid := range s.ValidMoves() {
		if valid == m {
			return m, nil
		}
	}
	return NoMove, errors.Wrapf(ErrIllegalMove, "%v in %v", m, s.FEN())
}

// Play applies a sequence of UCI moves starting from s.
func Play(s State, ucis ...string) (State, error) {
	for _, uci := range ucis {
		m, err := ParseMove(s, uci)
		if err != nil {
			return nil, err
		}
		s = s.Apply(m)
	}
	return s, nil
}
