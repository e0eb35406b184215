package game

import "github.com/notnil/chess"

type offset struct{ df, dr int }

var (
	knightJumps = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	straightRay = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalRay = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, false
	}
	return chess.Square(rank*8 + file), true
}

func kingSquare(b *chess.Board, c chess.Color) (chess.Square, bool) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.Piece(sq)
		if p.Type() == chess.King && p.Color() == c {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// attackers returns the squares of every piece of color by that attacks target.
func attackers(b *chess.Board, target chess.Square, by chess.Color) []chess.Square {
	var retVal []chess.Square
	f, r := int(target.File()), int(target.Rank())

	is := func(sq chess.Square, types ...chess.PieceType) bool {
		p := b.Piece(sq)
		if p == chess.NoPiece || p.Color() != by {
			return false
		}
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
		return false
	}

	// a pawn attacks diagonally forward, so look one rank behind the target
	pawnRank := r - 1
	if by == chess.Black {
		pawnRank = r + 1
	}
	for _, df := range []int{-1, 1} {
		if sq, ok := squareAt(f+df, pawnRank); ok && is(sq, chess.Pawn) {
			retVal = append(retVal, sq)
		}
	}
	for _, o := range knightJumps {
		if sq, ok := squareAt(f+o.df, r+o.dr); ok && is(sq, chess.Knight) {
			retVal = append(retVal, sq)
		}
	}
	for _, o := range kingSteps {
		if sq, ok := squareAt(f+o.df, r+o.dr); ok && is(sq, chess.King) {
			retVal = append(retVal, sq)
		}
	}
	slide := func(rays []offset, types ...chess.PieceType) {
		for _, o := range rays {
			for i := 1; ; i++ {
				sq, ok := squareAt(f+o.df*i, r+o.dr*i)
				if !ok {
					break
				}
				if b.Piece(sq) == chess.NoPiece {
					continue
				}
				if is(sq, types...) {
					retVal = append(retVal, sq)
				}
				break
			}
		}
	}
	slide(straightRay, chess.Rook, chess.Queen)
	slide(diagonalRay, chess.Bishop, chess.Queen)
	return retVal
}
