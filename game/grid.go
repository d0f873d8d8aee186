package game

import "iter"

// Grid は盤面と同じ大きさの bool の平面です
// 行優先の1次元スライスで持ちます。Field が地雷・開封済み・フラグの
// 3枚を同じ形で重ねて使います
type Grid struct {
	data []bool
	size Coordinate
}

// NewGrid は全マス false の Grid を作ります
func NewGrid(size Coordinate) *Grid {
	return &Grid{
		data: make([]bool, size.Row*size.Col),
		size: size,
	}
}

// position は (Row, Col) を行優先の添字に変換します
func (g *Grid) position(c Coordinate) int {
	return c.Row*g.size.Col + c.Col
}

// Get は指定マスの値を返します
// 範囲チェックはしません。座標は All / Around か座標変換が保証します
func (g *Grid) Get(c Coordinate) bool {
	return g.data[g.position(c)]
}

// Set は指定マスの値を書き換えます
func (g *Grid) Set(c Coordinate, value bool) {
	g.data[g.position(c)] = value
}

// All は全マスを行優先で列挙します
func (g *Grid) All() iter.Seq[Coordinate] {
	return allCoordinates(g.size)
}

// Around は c を中心とする3x3の範囲を列挙します（中心マス自身も含む）
// 盤面の端では範囲外を切り捨てます。折り返しはしません
func (g *Grid) Around(c Coordinate) iter.Seq[Coordinate] {
	start := Coordinate{Row: max(c.Row-1, 0), Col: max(c.Col-1, 0)}
	end := Coordinate{Row: min(c.Row+2, g.size.Row), Col: min(c.Col+2, g.size.Col)}
	return func(yield func(Coordinate) bool) {
		for row := start.Row; row < end.Row; row++ {
			for col := start.Col; col < end.Col; col++ {
				if !yield(Coordinate{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// SumNeighbors は隣接マスのうち true の個数を数えます
// 中心マス自身は数に入れません
func (g *Grid) SumNeighbors(c Coordinate) int {
	sum := 0
	for n := range g.Around(c) {
		if n == c {
			continue
		}
		if g.Get(n) {
			sum++
		}
	}
	return sum
}

// Count は盤面全体の true の個数を返します
func (g *Grid) Count() int {
	count := 0
	for _, v := range g.data {
		if v {
			count++
		}
	}
	return count
}

func allCoordinates(size Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for row := 0; row < size.Row; row++ {
			for col := 0; col < size.Col; col++ {
				if !yield(Coordinate{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
