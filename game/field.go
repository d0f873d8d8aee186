package game

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
)

// ErrInvalidConfig は盤面として成立しない設定を表すエラーです
var ErrInvalidConfig = errors.New("invalid field configuration")

// safeZoneSize は初手で必ず空ける範囲（クリックしたマスと周囲3x3）のマス数です
const safeZoneSize = 9

// Field は地雷・開封済み・フラグの3枚の Grid を重ねた盤面です
// 地雷は最初のクリックまで配置されません
type Field struct {
	size           Coordinate
	nMines         int
	minesAllocated bool

	mines  *Grid
	opened *Grid
	flags  *Grid

	rng *rand.Rand
}

// NewField は空の盤面を作ります。地雷はまだ配置しません
// 地雷数の上限は「全マス - 9」です。初手の周囲3x3を空ける分を差し引くためで、
// 超えていたらここでエラーにします。勝手に減らしたりはしません
// rng が nil の場合は自動シードの生成器を使います
func NewField(size Coordinate, nMines int, rng *rand.Rand) (*Field, error) {
	if size.Row <= 0 || size.Col <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, size.Row, size.Col)
	}
	if nMines < 0 || nMines > size.Row*size.Col-safeZoneSize {
		return nil, fmt.Errorf("%w: %d mines on %dx%d board", ErrInvalidConfig, nMines, size.Row, size.Col)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Field{
		size:   size,
		nMines: nMines,
		mines:  NewGrid(size),
		opened: NewGrid(size),
		flags:  NewGrid(size),
		rng:    rng,
	}, nil
}

// NewFieldWithMines は地雷の位置を固定した盤面を作ります
// 乱数を使わないので、決まった局面を再現したいとき（デバッグやテスト）に使います
func NewFieldWithMines(size Coordinate, mines []Coordinate) (*Field, error) {
	if size.Row <= 0 || size.Col <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, size.Row, size.Col)
	}
	f := &Field{
		size:           size,
		nMines:         len(mines),
		minesAllocated: true,
		mines:          NewGrid(size),
		opened:         NewGrid(size),
		flags:          NewGrid(size),
	}
	for _, c := range mines {
		if c.Row < 0 || c.Row >= size.Row || c.Col < 0 || c.Col >= size.Col {
			return nil, fmt.Errorf("%w: mine at %v is out of bounds", ErrInvalidConfig, c)
		}
		if f.mines.Get(c) {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfig, c)
		}
		f.mines.Set(c, true)
	}
	return f, nil
}

// AllocateMines は初手のマスと周囲3x3を避けて地雷をランダムに配置します
// 2回目以降の呼び出しは何もしません
func (f *Field) AllocateMines(start Coordinate) {
	if f.minesAllocated {
		return
	}

	excluded := make(map[Coordinate]struct{}, safeZoneSize)
	for c := range f.mines.Around(start) {
		excluded[c] = struct{}{}
	}

	candidates := make([]Coordinate, 0, f.size.Row*f.size.Col-len(excluded))
	for c := range f.mines.All() {
		if _, ok := excluded[c]; !ok {
			candidates = append(candidates, c)
		}
	}

	f.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates[:f.nMines] {
		f.mines.Set(c, true)
	}
	f.minesAllocated = true
}

// HandleClick は開封操作を処理します
// 最初のクリックならその場所を安全地帯にして地雷を配置します
// フラグ付きのマスは開きません（Safe を返すだけ）
func (f *Field) HandleClick(c Coordinate) ClickResult {
	if !f.minesAllocated {
		f.AllocateMines(c)
	}
	if f.flags.Get(c) {
		return Safe
	}
	f.OpenAt(c)
	if f.mines.Get(c) {
		return Exploded
	}
	return Safe
}

// HandleForceClick はフラグの切り替えを処理します
// 開封済みのマスには立てられません。常に Safe を返します
func (f *Field) HandleForceClick(c Coordinate) ClickResult {
	if !f.opened.Get(c) {
		f.flags.Set(c, !f.flags.Get(c))
	}
	return Safe
}

// OpenAt は指定マスを開きます。開いたマスのフラグは消えます
// 周囲に地雷が1つも無いマスなら隣接マスへ連鎖します（Flood Fill）
// 連鎖は再帰ではなく明示的なスタックで辿り、積むときに開封済みにします
// すでに開いているマスに対しては何もしません
func (f *Field) OpenAt(c Coordinate) {
	if f.opened.Get(c) {
		return
	}
	f.opened.Set(c, true)
	stack := []Coordinate{c}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.flags.Set(cur, false)
		if f.mines.Get(cur) || f.mines.SumNeighbors(cur) > 0 {
			continue
		}
		for n := range f.opened.Around(cur) {
			if !f.opened.Get(n) && !f.mines.Get(n) {
				f.opened.Set(n, true)
				stack = append(stack, n)
			}
		}
	}
}

// ItemAt は1マス分の状態をまとめて返します
func (f *Field) ItemAt(c Coordinate) FieldItem {
	return FieldItem{
		IsOpened:      f.opened.Get(c),
		IsMined:       f.mines.Get(c),
		IsFlagged:     f.flags.Get(c),
		NeighborCount: f.mines.SumNeighbors(c),
	}
}

// Items は全マスの状態を行優先で列挙します
func (f *Field) Items() iter.Seq2[Coordinate, FieldItem] {
	return func(yield func(Coordinate, FieldItem) bool) {
		for c := range f.mines.All() {
			if !yield(c, f.ItemAt(c)) {
				return
			}
		}
	}
}

// Size は盤面の大きさを返します
func (f *Field) Size() Coordinate { return f.size }

// NMines は地雷の総数を返します
func (f *Field) NMines() int { return f.nMines }

// MinesAllocated は地雷がもう配置されているかどうかを返します
func (f *Field) MinesAllocated() bool { return f.minesAllocated }

// OpenedCount は開封済みのマス数を返します
func (f *Field) OpenedCount() int { return f.opened.Count() }

// FlagCount は立っているフラグの数を返します
func (f *Field) FlagCount() int { return f.flags.Count() }

// NeighborCount は周囲8マスの地雷の数を返します
func (f *Field) NeighborCount(c Coordinate) int { return f.mines.SumNeighbors(c) }
