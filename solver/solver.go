package solver

import (
	"math/rand/v2"

	"minesweeper/game"
)

// MoveType はソルバーの行動の種類です
type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

// Move はソルバーが選んだ1手です
type Move struct {
	Coord      game.Coordinate
	Type       MoveType
	IsGuess    bool    // 運任せかどうか
	Strategy   string  // "Logic", "Tank", "Tank(Prob)", "Random"
	Confidence float64 // 0.0 ~ 1.0 (安全確率)
}

// Solver は盤面を読んで次の1手を決めます
type Solver struct {
	Field *game.Field
	rng   *rand.Rand
}

// New はソルバーを初期化します
// rng が nil の場合は自動シードの生成器を使います
func New(f *game.Field, rng *rand.Rand) *Solver {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Solver{Field: f, rng: rng}
}

// NextMove は次の1手を返します。打つ手が無い場合は nil
func (s *Solver) NextMove() *Move {
	// 1. 論理的に「絶対に安全」
	if move := s.findSafeMove(); move != nil {
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	// 2. 論理的に「絶対に地雷」
	if move := s.findFlagMove(); move != nil {
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	// 3. バックトラック探索（確定手、なければ最も安全な推測）
	if move := NewTankSolver(s.Field).Solve(); move != nil {
		move.IsGuess = move.Confidence < 1.0
		return move
	}

	// 4. ランダム
	move := s.findPureRandomMove()
	if move != nil {
		move.IsGuess = true
	}
	return move
}

// findSafeMove は「数字とフラグ数が一致した数字マス」の残りの隣接マスを探します
func (s *Solver) findSafeMove() *Move {
	for c, item := range s.Field.Items() {
		if !item.IsOpened || item.NeighborCount == 0 {
			continue
		}
		_, flags, hidden := s.neighborsInfo(c)
		if flags == item.NeighborCount && len(hidden) > 0 {
			return &Move{Coord: hidden[0], Type: MoveOpen}
		}
	}
	return nil
}

// findFlagMove は「未開封マスが数字とちょうど同数の数字マス」の隣接マスを探します
func (s *Solver) findFlagMove() *Move {
	for c, item := range s.Field.Items() {
		if !item.IsOpened || item.NeighborCount == 0 {
			continue
		}
		totalHidden, flags, hidden := s.neighborsInfo(c)
		if totalHidden == item.NeighborCount && totalHidden-flags > 0 {
			return &Move{Coord: hidden[0], Type: MoveFlag}
		}
	}
	return nil
}

// findPureRandomMove は未開封・フラグ無しのマスから一様ランダムに選びます
func (s *Solver) findPureRandomMove() *Move {
	var candidates []game.Coordinate
	for c, item := range s.Field.Items() {
		if !item.IsOpened && !item.IsFlagged {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	choice := candidates[s.rng.IntN(len(candidates))]
	return &Move{
		Coord:      choice,
		Type:       MoveOpen,
		Strategy:   "Random",
		Confidence: 0.0,
	}
}

// neighborsInfo は隣接8マスの内訳を返します
// totalHidden はフラグ込みの未開封数、hidden はフラグ無しの未開封マスのリストです
func (s *Solver) neighborsInfo(c game.Coordinate) (totalHidden, flags int, hidden []game.Coordinate) {
	return neighborsInfo(s.Field, c)
}

func neighborsInfo(f *game.Field, c game.Coordinate) (totalHidden, flags int, hidden []game.Coordinate) {
	size := f.Size()
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			n := game.Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
			if n.Row < 0 || n.Row >= size.Row || n.Col < 0 || n.Col >= size.Col {
				continue
			}
			item := f.ItemAt(n)
			if item.IsOpened {
				continue
			}
			totalHidden++
			if item.IsFlagged {
				flags++
			} else {
				hidden = append(hidden, n)
			}
		}
	}
	return totalHidden, flags, hidden
}
