package solver

import (
	"math/rand/v2"
	"testing"

	"minesweeper/game"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestFindSafeMove(t *testing.T) {
	// (0,0) に地雷。中央を開けて地雷にフラグを立てると、
	// 数字1 = フラグ1 なので残りの隣接マスは全部安全と分かる
	f, err := game.NewFieldWithMines(game.Coordinate{Row: 3, Col: 3}, []game.Coordinate{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatal(err)
	}
	f.OpenAt(game.Coordinate{Row: 1, Col: 1})
	f.HandleForceClick(game.Coordinate{Row: 0, Col: 0})

	move := New(f, testRNG(1)).NextMove()
	if move == nil {
		t.Fatal("NextMove() = nil")
	}
	if move.Type != MoveOpen {
		t.Fatalf("move.Type = %v, want MoveOpen", move.Type)
	}
	if move.Strategy != "Logic" {
		t.Errorf("move.Strategy = %q, want Logic", move.Strategy)
	}
	if move.IsGuess {
		t.Error("論理で確定した手が IsGuess になっている")
	}
	if f.ItemAt(move.Coord).IsMined {
		t.Errorf("安全なはずの %v が地雷", move.Coord)
	}
}

func TestFindFlagMove(t *testing.T) {
	// 2x2 の (0,0) に地雷。他の3マスを開けると
	// 未開封1 = 数字1 で (0,0) が地雷と確定する
	f, err := game.NewFieldWithMines(game.Coordinate{Row: 2, Col: 2}, []game.Coordinate{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []game.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		f.OpenAt(c)
	}

	move := New(f, testRNG(1)).NextMove()
	if move == nil {
		t.Fatal("NextMove() = nil")
	}
	if move.Type != MoveFlag {
		t.Fatalf("move.Type = %v, want MoveFlag", move.Type)
	}
	want := game.Coordinate{Row: 0, Col: 0}
	if move.Coord != want {
		t.Errorf("move.Coord = %v, want %v", move.Coord, want)
	}
	if move.Strategy != "Logic" {
		t.Errorf("move.Strategy = %q, want Logic", move.Strategy)
	}
}

func TestNextMoveReturnsNilWhenSolved(t *testing.T) {
	f, err := game.NewFieldWithMines(game.Coordinate{Row: 2, Col: 2}, []game.Coordinate{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []game.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		f.OpenAt(c)
	}
	f.HandleForceClick(game.Coordinate{Row: 0, Col: 0})

	// 安全マスは全部開いていて、地雷にはフラグ済み。打つ手は無い
	if move := New(f, testRNG(1)).NextMove(); move != nil {
		t.Errorf("NextMove() = %+v, want nil", move)
	}
}

func TestNextMoveOnFreshFieldIsRandomGuess(t *testing.T) {
	f, err := game.NewField(game.Coordinate{Row: 10, Col: 10}, 10, testRNG(3))
	if err != nil {
		t.Fatal(err)
	}

	move := New(f, testRNG(4)).NextMove()
	if move == nil {
		t.Fatal("NextMove() = nil")
	}
	if move.Type != MoveOpen {
		t.Errorf("move.Type = %v, want MoveOpen", move.Type)
	}
	if !move.IsGuess {
		t.Error("何も開いていない盤面の手が IsGuess ではない")
	}
	if move.Strategy != "Random" {
		t.Errorf("move.Strategy = %q, want Random", move.Strategy)
	}
}

func TestNeighborsInfo(t *testing.T) {
	f, err := game.NewFieldWithMines(game.Coordinate{Row: 3, Col: 3}, []game.Coordinate{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatal(err)
	}
	f.HandleForceClick(game.Coordinate{Row: 0, Col: 1})

	totalHidden, flags, hidden := neighborsInfo(f, game.Coordinate{Row: 1, Col: 1})
	if totalHidden != 8 {
		t.Errorf("totalHidden = %d, want 8", totalHidden)
	}
	if flags != 1 {
		t.Errorf("flags = %d, want 1", flags)
	}
	if len(hidden) != 7 {
		t.Errorf("len(hidden) = %d, want 7", len(hidden))
	}
}
