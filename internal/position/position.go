/*
 * chess-ai-sub001 - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chess-ai-sub001 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents a chess board and its position: an 8x8 mailbox
// plus per-type/per-color bitboards, a zobrist key maintained incrementally
// across make/unmake, and a state-history stack used for unmake and
// repetition detection.
//
// Create a new instance with NewPosition() for the standard start position,
// or NewPositionFromFen() to set up an arbitrary position.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/ASmolyar/chess-ai-sub001/internal/attacks"
	myLogging "github.com/ASmolyar/chess-ai-sub001/internal/logging"
	. "github.com/ASmolyar/chess-ai-sub001/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the undo stack; it is generous relative to any game
// length a search will ever reach within one process lifetime.
const maxHistory = 1024

var log *logging.Logger

func init() {
	log = myLogging.GetLog("position")
}

// undoState captures everything DoMove mutates beyond the board array, so
// UndoMove can restore it without recomputation.
type undoState struct {
	castling       CastlingRights
	epSquare       Square
	halfMoveClock  int
	key            Key
	checkers       Bitboard
	captured       Piece
	capturedSquare Square
	move           Move
}

// Position holds the full mutable state of a chess board.
type Position struct {
	board   [SquareLength]Piece
	byType  [PieceTypeLength]Bitboard // byType[0] is unused; all-occupied lives in allPieces
	byColor [ColorLength]Bitboard

	allPieces Bitboard

	sideToMove     Color
	castling       CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int
	ply            int

	key      Key
	checkers Bitboard

	history    [maxHistory]undoState
	historyLen int

	// keyHistory is the position-key history used for repetition
	// detection; it grows/shrinks alongside history but is kept apart per
	// spec 3 ("a position-key history used for repetition detection").
	keyHistory []Key
}

// NewPosition returns a Position set to the standard starting array.
func NewPosition() *Position {
	p := &Position{}
	if err := p.SetFen(StartFen); err != nil {
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// NewPositionFromFen parses fen and returns the resulting Position, or a
// MalformedInput-class error (spec 7) describing the first problem found.
func NewPositionFromFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a deep, independent copy suitable for handing to a separate
// isolated Engine/Search (spec 5: per-request engine isolation).
func (p *Position) Clone() *Position {
	c := *p
	c.keyHistory = append([]Key(nil), p.keyHistory...)
	return &c
}

// ---- accessors -------------------------------------------------------

func (p *Position) SideToMove() Color          { return p.sideToMove }
func (p *Position) PieceOn(sq Square) Piece    { return p.board[sq] }
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.byType[pt] & p.byColor[c]
}
func (p *Position) OccupiedBb(c Color) Bitboard { return p.byColor[c] }
func (p *Position) OccupiedAll() Bitboard       { return p.allPieces }
func (p *Position) CastlingRights() CastlingRights { return p.castling }
func (p *Position) EnPassantSquare() Square     { return p.epSquare }
func (p *Position) HalfMoveClock() int          { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int         { return p.fullMoveNumber }
func (p *Position) Ply() int                    { return p.ply }
func (p *Position) ZobristKey() Key             { return p.key }
func (p *Position) Checkers() Bitboard          { return p.checkers }
func (p *Position) InCheck() bool               { return p.checkers != BbZero }

// AttackersTo returns every piece of either color that attacks sq given an
// arbitrary occupied bitboard - callers evaluating a capture sequence (static
// exchange evaluation) pass a shrinking occupancy as pieces are removed from
// the board one exchange at a time.
func (p *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	return p.attackersTo(sq, occupied)
}

func (p *Position) KingSquare(c Color) Square {
	return p.PiecesBb(c, King).Lsb()
}

func (p *Position) LastMove() Move {
	if p.historyLen == 0 {
		return MoveNone
	}
	return p.history[p.historyLen-1].move
}

// ---- FEN ---------------------------------------------------------------

// SetFen resets the position from a FEN string, deriving checkers, the
// zobrist key, and a fresh one-entry position-key history (spec 6).
func (p *Position) SetFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed fen %q: need at least 4 fields", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	var board [SquareLength]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if f >= FileLength {
				return fmt.Errorf("position: malformed fen %q: rank %d overflows", fen, i)
			}
			pc, ok := PieceFromChar(c)
			if !ok {
				return fmt.Errorf("position: malformed fen %q: bad piece char %q", fen, string(c))
			}
			board[MakeSquare(f, r)] = pc
			f++
		}
		if f != FileLength {
			return fmt.Errorf("position: malformed fen %q: rank %d has wrong length", fen, i)
		}
	}

	side, ok := ColorFromChar(fields[1])
	if !ok {
		return fmt.Errorf("position: malformed fen %q: bad side to move %q", fen, fields[1])
	}
	castling, ok := CastlingRightsFromString(fields[2])
	if !ok {
		return fmt.Errorf("position: malformed fen %q: bad castling field %q", fen, fields[2])
	}
	epSquare, ok := SquareFromString(fields[3])
	if !ok {
		return fmt.Errorf("position: malformed fen %q: bad en passant field %q", fen, fields[3])
	}
	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return fmt.Errorf("position: malformed fen %q: bad half-move clock %q", fen, fields[4])
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		fullMove = 1
	}

	p.board = board
	p.byType = [PieceTypeLength]Bitboard{}
	p.byColor = [ColorLength]Bitboard{}
	p.allPieces = BbZero
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := board[sq]
		if pc.IsNone() {
			continue
		}
		p.byType[pc.TypeOf()] = p.byType[pc.TypeOf()].PushSquare(sq)
		p.byColor[pc.ColorOf()] = p.byColor[pc.ColorOf()].PushSquare(sq)
		p.allPieces = p.allPieces.PushSquare(sq)
	}

	p.sideToMove = side
	p.castling = castling
	// only keep the ep square if it is actually realizable by a pawn
	// capture, to keep the key stable across transpositions (spec 4.2).
	if epSquare != SqNone && !p.epCaptureIsPossible(epSquare, side) {
		epSquare = SqNone
	}
	p.epSquare = epSquare
	p.halfMoveClock = halfMove
	p.fullMoveNumber = fullMove
	p.ply = (fullMove-1)*2 + int(side)
	p.historyLen = 0
	p.keyHistory = p.keyHistory[:0]

	p.key = p.computeKeyFromScratch()
	p.checkers = p.attackersToByColor(p.KingSquare(p.sideToMove), p.sideToMove.Opposite())
	p.keyHistory = append(p.keyHistory, p.key)
	log.Debugf("position set from fen: %s", fen)
	return nil
}

func (p *Position) epCaptureIsPossible(epSquare Square, sideToMove Color) bool {
	// a pawn capture onto epSquare is only possible for an attacker of
	// sideToMove's color standing on the same rank as the just-pushed pawn.
	capturerRank := epSquare.RankOf()
	if sideToMove == White {
		capturerRank = Rank(int(epSquare.RankOf()) - 1)
	} else {
		capturerRank = Rank(int(epSquare.RankOf()) + 1)
	}
	f := epSquare.FileOf()
	var neighbours Bitboard
	if f > FileA {
		neighbours = neighbours.PushSquare(MakeSquare(f-1, capturerRank))
	}
	if f < FileH {
		neighbours = neighbours.PushSquare(MakeSquare(f+1, capturerRank))
	}
	return neighbours&p.PiecesBb(sideToMove, Pawn) != 0
}

// Fen renders the position as a standard six-field FEN string.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f < FileLength; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := pc.TypeOf().String()
			if pc.ColorOf() == Black {
				ch = strings.ToLower(ch)
			}
			sb.WriteString(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

func (p *Position) String() string { return p.Fen() }

// ---- zobrist -------------------------------------------------------------

func (p *Position) computeKeyFromScratch() Key {
	var k Key
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.board[sq]
		if pc.IsNone() {
			continue
		}
		k ^= ZobristPieceSquare[pc.TypeOf()][pc.ColorOf()][sq]
	}
	k ^= ZobristCastling[p.castling]
	if p.epSquare != SqNone {
		k ^= ZobristEpFile[p.epSquare.FileOf()]
	}
	if p.sideToMove == Black {
		k ^= ZobristSide
	}
	return k
}

// ---- piece placement helpers (mutate board + bitboards + key) -----------

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	p.byType[pc.TypeOf()] = p.byType[pc.TypeOf()].PushSquare(sq)
	p.byColor[pc.ColorOf()] = p.byColor[pc.ColorOf()].PushSquare(sq)
	p.allPieces = p.allPieces.PushSquare(sq)
	p.key ^= ZobristPieceSquare[pc.TypeOf()][pc.ColorOf()][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	p.board[sq] = PieceNone
	p.byType[pc.TypeOf()] = p.byType[pc.TypeOf()].PopSquare(sq)
	p.byColor[pc.ColorOf()] = p.byColor[pc.ColorOf()].PopSquare(sq)
	p.allPieces = p.allPieces.PopSquare(sq)
	p.key ^= ZobristPieceSquare[pc.TypeOf()][pc.ColorOf()][sq]
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// ---- attacks / checkers ---------------------------------------------------

// attackersTo returns every piece (either color) attacking sq under the
// given occupancy.
func (p *Position) attackersTo(sq Square, occupied Bitboard) Bitboard {
	return (attacks.GetPawnAttacks(Black, sq) & p.PiecesBb(White, Pawn)) |
		(attacks.GetPawnAttacks(White, sq) & p.PiecesBb(Black, Pawn)) |
		(attacks.GetAttacksBb(Knight, sq, occupied) & (p.byType[Knight])) |
		(attacks.GetAttacksBb(King, sq, occupied) & (p.byType[King])) |
		(attacks.GetAttacksBb(Bishop, sq, occupied) & (p.byType[Bishop] | p.byType[Queen])) |
		(attacks.GetAttacksBb(Rook, sq, occupied) & (p.byType[Rook] | p.byType[Queen]))
}

// attackersToByColor returns attackers of sq belonging to color by only.
func (p *Position) attackersToByColor(sq Square, by Color) Bitboard {
	return p.attackersTo(sq, p.allPieces) & p.byColor[by]
}

// isSquareAttackedOn reports whether any piece of color by attacks sq, given
// an (optionally modified) occupancy - callers pass a modified occupancy to
// simulate a king having moved off its square, etc.
func (p *Position) isSquareAttackedOn(sq Square, by Color, occupied Bitboard) bool {
	return p.attackersTo(sq, occupied)&p.byColor[by] != 0
}

// IsSquareAttacked reports whether any piece of color by attacks sq on the
// current occupancy.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.isSquareAttackedOn(sq, by, p.allPieces)
}

func (p *Position) recomputeCheckers() {
	us := p.sideToMove
	p.checkers = p.attackersToByColor(p.KingSquare(us), us.Opposite())
}

// ---- make / unmake ---------------------------------------------------

// DoMove applies a pseudo-legal move. Callers are expected to have verified
// legality with IsLegal beforehand (the generator + IsLegal pairing, spec
// 4.3/4.2); DoMove itself performs no legality checks.
func (p *Position) DoMove(m Move) {
	from, to := m.From(), m.To()
	us := p.sideToMove
	them := us.Opposite()
	movingPiece := p.board[from]
	capturedPiece := p.board[to]
	capturedSquare := to

	st := &p.history[p.historyLen]
	st.castling = p.castling
	st.epSquare = p.epSquare
	st.halfMoveClock = p.halfMoveClock
	st.key = p.key
	st.checkers = p.checkers
	st.move = m
	p.historyLen++

	// fifty-move clock: reset on pawn move, capture, or promotion.
	isPawnMove := movingPiece.TypeOf() == Pawn
	p.halfMoveClock++

	// side term and castling/ep terms are XORed out now, new ones XORed in
	// at the end, so intermediate piece mutations don't need to care.
	p.key ^= ZobristCastling[p.castling]
	if p.epSquare != SqNone {
		p.key ^= ZobristEpFile[p.epSquare.FileOf()]
	}

	switch m.MoveType() {
	case EnPassant:
		capturedSquare = MakeSquare(to.FileOf(), from.RankOf())
		capturedPiece = p.removePiece(capturedSquare)
		p.movePiece(from, to)
	case Castling:
		p.movePiece(from, to)
		if to == KingsideTarget(us) {
			p.movePiece(KingsideRookFrom(us), KingsideRookTo(us))
		} else {
			p.movePiece(QueensideRookFrom(us), QueensideRookTo(us))
		}
		capturedPiece = PieceNone
	case Promotion:
		if capturedPiece != PieceNone {
			p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(us, m.PromotionType()), to)
	default: // Normal
		if capturedPiece != PieceNone {
			p.removePiece(to)
		}
		p.movePiece(from, to)
	}

	st.captured = capturedPiece
	st.capturedSquare = capturedSquare

	if capturedPiece != PieceNone || isPawnMove {
		p.halfMoveClock = 0
	}

	// castling rights lost by this move touching from/to.
	p.castling &^= RightsToClear(from) | RightsToClear(to)

	// en passant square: only set if an enemy pawn could actually capture
	// there (spec 4.2 step 3), keeping the key stable under transpositions
	// that never realize the ep capture.
	newEp := SqNone
	rankDelta := int(to.RankOf()) - int(from.RankOf())
	if isPawnMove && (rankDelta == 2 || rankDelta == -2) {
		candidate := MakeSquare(from.FileOf(), Rank((int(from.RankOf())+int(to.RankOf()))/2))
		if p.epCaptureIsPossible(candidate, them) {
			newEp = candidate
		}
	}
	p.epSquare = newEp

	p.key ^= ZobristCastling[p.castling]
	if p.epSquare != SqNone {
		p.key ^= ZobristEpFile[p.epSquare.FileOf()]
	}
	p.key ^= ZobristSide

	p.sideToMove = them
	p.ply++
	if us == Black {
		p.fullMoveNumber++
	}
	p.recomputeCheckers()
	p.keyHistory = append(p.keyHistory, p.key)
}

// UndoMove reverses the most recent DoMove, restoring every field of
// Position exactly (spec testable property 3).
func (p *Position) UndoMove() {
	p.historyLen--
	st := &p.history[p.historyLen]
	m := st.move

	p.sideToMove = p.sideToMove.Opposite()
	us := p.sideToMove
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case EnPassant:
		p.movePiece(to, from)
		p.putPiece(st.captured, st.capturedSquare)
	case Castling:
		p.movePiece(to, from)
		if to == KingsideTarget(us) {
			p.movePiece(KingsideRookTo(us), KingsideRookFrom(us))
		} else {
			p.movePiece(QueensideRookTo(us), QueensideRookFrom(us))
		}
	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
		if st.captured != PieceNone {
			p.putPiece(st.captured, to)
		}
	default: // Normal
		p.movePiece(to, from)
		if st.captured != PieceNone {
			p.putPiece(st.captured, to)
		}
	}

	p.castling = st.castling
	p.epSquare = st.epSquare
	p.halfMoveClock = st.halfMoveClock
	p.key = st.key
	p.checkers = st.checkers
	p.ply--
	if us == Black {
		p.fullMoveNumber--
	}
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
}

// DoNullMove flips side to move without moving a piece, used by null-move
// pruning (spec 4.6 step 4).
func (p *Position) DoNullMove() {
	st := &p.history[p.historyLen]
	st.castling = p.castling
	st.epSquare = p.epSquare
	st.halfMoveClock = p.halfMoveClock
	st.key = p.key
	st.checkers = p.checkers
	st.move = MoveNone
	p.historyLen++

	if p.epSquare != SqNone {
		p.key ^= ZobristEpFile[p.epSquare.FileOf()]
		p.epSquare = SqNone
	}
	p.key ^= ZobristSide
	p.sideToMove = p.sideToMove.Opposite()
	p.ply++
	p.recomputeCheckers()
	p.keyHistory = append(p.keyHistory, p.key)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyLen--
	st := &p.history[p.historyLen]
	p.sideToMove = p.sideToMove.Opposite()
	p.epSquare = st.epSquare
	p.key = st.key
	p.checkers = st.checkers
	p.ply--
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
}

// ---- legality -------------------------------------------------------

// IsLegal decides whether the pseudo-legal move m is legal to play in the
// current position (spec 4.2).
func (p *Position) IsLegal(m Move) bool {
	us := p.sideToMove
	them := us.Opposite()
	from, to := m.From(), m.To()
	kingSq := p.KingSquare(us)

	if m.MoveType() == Castling {
		// path squares (including destination) must not be attacked; the
		// generator already guarantees the king isn't currently in check
		// and the path is empty.
		step := East
		if to.FileOf() < from.FileOf() {
			step = West
		}
		s := from
		for {
			if p.isSquareAttackedOn(s, them, p.allPieces) {
				return false
			}
			if s == to {
				break
			}
			s = s.To(step)
		}
		return true
	}

	if m.MoveType() == EnPassant {
		capturedSq := MakeSquare(to.FileOf(), from.RankOf())
		occ := p.allPieces
		occ = occ.PopSquare(from).PopSquare(capturedSq).PushSquare(to)
		return !p.isSquareAttackedOn(kingSq, them, occ)
	}

	if from == kingSq {
		occ := p.allPieces.PopSquare(from)
		return !p.isSquareAttackedOn(to, them, occ)
	}

	// pinned piece: if moving off the king's ray to the pinner, illegal.
	if p.isPinned(from, us) && !attacks.Aligned(kingSq, from, to) {
		return false
	}

	switch p.checkers.PopCount() {
	case 0:
		return true
	case 1:
		checkerSq := p.checkers.Lsb()
		allowed := attacks.Between(kingSq, checkerSq).PushSquare(checkerSq)
		return allowed.Has(to)
	default: // double check: only king moves are legal, handled above
		return false
	}
}

// directionBetween returns the single compass step from s1 towards s2 when
// the two squares share a rook or bishop ray.
func directionBetween(s1, s2 Square) (Direction, bool) {
	if s1 == s2 || attacks.Line(s1, s2) == BbZero {
		return 0, false
	}
	df := int(s2.FileOf()) - int(s1.FileOf())
	dr := int(s2.RankOf()) - int(s1.RankOf())
	switch {
	case df == 0 && dr > 0:
		return North, true
	case df == 0 && dr < 0:
		return South, true
	case dr == 0 && df > 0:
		return East, true
	case dr == 0 && df < 0:
		return West, true
	case df == dr && df > 0:
		return Northeast, true
	case df == dr && df < 0:
		return Southwest, true
	case df == -dr && df > 0:
		return Southeast, true
	case df == -dr && df < 0:
		return Northwest, true
	default:
		return 0, false
	}
}

// isPinned reports whether the piece on sq (belonging to color us) is
// pinned to its own king along a rook or bishop ray: walk from the king
// through sq and beyond, looking for an enemy slider of the matching kind
// with nothing else in between.
func (p *Position) isPinned(sq Square, us Color) bool {
	kingSq := p.KingSquare(us)
	d, ok := directionBetween(kingSq, sq)
	if !ok {
		return false
	}
	them := us.Opposite()
	isDiagonal := d == Northeast || d == Southeast || d == Southwest || d == Northwest

	s := kingSq
	reachedSq := false
	for {
		s = s.To(d)
		if s == SqNone {
			return false
		}
		if s == sq {
			reachedSq = true
			continue
		}
		pc := p.board[s]
		if pc.IsNone() {
			continue
		}
		if !reachedSq {
			return false // something else blocks the ray before sq
		}
		if pc.ColorOf() != them {
			return false
		}
		switch pc.TypeOf() {
		case Queen:
			return true
		case Rook:
			return !isDiagonal
		case Bishop:
			return isDiagonal
		default:
			return false
		}
	}
}

// ---- draw detection ---------------------------------------------------

// IsDraw reports fifty-move, insufficient material, or repetition draws
// (spec 4.2, testable property 6).
func (p *Position) IsDraw() bool {
	if p.halfMoveClock >= 100 {
		return true
	}
	if p.HasInsufficientMaterial() {
		return true
	}
	return p.isRepetition()
}

// HasInsufficientMaterial reports K-vs-K or K+minor-vs-K material, the
// material component of a draw independent of move-count or repetition.
func (p *Position) HasInsufficientMaterial() bool {
	if p.byType[Pawn]|p.byType[Rook]|p.byType[Queen] != 0 {
		return false
	}
	whiteMinors := p.PiecesBb(White, Knight).PopCount() + p.PiecesBb(White, Bishop).PopCount()
	blackMinors := p.PiecesBb(Black, Knight).PopCount() + p.PiecesBb(Black, Bishop).PopCount()
	// K vs K, or K+minor vs K
	return whiteMinors+blackMinors <= 1
}

// isRepetition scans the key history backwards two plies at a time, bounded
// by the half-move clock, looking for one earlier repeat of the current key
// (spec 4.2: "a single earlier repeat counts as a draw within the current
// search" - the ply-bounded cycle rule; testable property 6 layers the
// standard threefold count on top at the game-record level).
func (p *Position) isRepetition() bool {
	n := len(p.keyHistory)
	if n < 5 {
		return false
	}
	limit := p.halfMoveClock
	if limit > n-1 {
		limit = n - 1
	}
	current := p.keyHistory[n-1]
	for i := 4; i <= limit; i += 2 {
		if p.keyHistory[n-1-i] == current {
			return true
		}
	}
	return false
}

// CountRepetitions returns how many times the current key has occurred
// previously within the half-move clock window (used to implement a strict
// threefold check at the game-record level, testable property 6).
func (p *Position) CountRepetitions() int {
	n := len(p.keyHistory)
	if n == 0 {
		return 0
	}
	limit := p.halfMoveClock
	if limit > n-1 {
		limit = n - 1
	}
	current := p.keyHistory[n-1]
	count := 0
	for i := 2; i <= limit; i += 2 {
		if p.keyHistory[n-1-i] == current {
			count++
		}
	}
	return count
}

// GamePhase sums non-pawn piece weights for both sides (knight/bishop=3,
// rook=5, queen=9). No evaluator in this repository calls it: the rule
// evaluator computes its own phase, and the classical evaluator does no
// midgame/endgame blend.
func (p *Position) GamePhase() int {
	phase := 0
	phase += p.byType[Knight].PopCount() * 3
	phase += p.byType[Bishop].PopCount() * 3
	phase += p.byType[Rook].PopCount() * 5
	phase += p.byType[Queen].PopCount() * 9
	return phase
}
