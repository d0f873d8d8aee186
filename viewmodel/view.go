package viewmodel

import (
	"fmt"

	"minesweeper/game"
)

// CellView は1マス分の描画用の状態です
type CellView struct {
	Opened    bool
	Mined     bool
	Flagged   bool
	Neighbors int
}

// BoardView は盤面全体の描画用スナップショットです
type BoardView struct {
	Cells          [][]CellView
	FlagsRemaining int
	Status         game.GameStatus
}

// New は Session から描画用のスナップショットを作ります
func New(s *game.Session) BoardView {
	field := s.Field()
	size := field.Size()

	cells := make([][]CellView, size.Row)
	for row := range cells {
		cells[row] = make([]CellView, size.Col)
	}
	for c, item := range field.Items() {
		cells[c.Row][c.Col] = CellView{
			Opened:    item.IsOpened,
			Mined:     item.IsMined,
			Flagged:   item.IsFlagged,
			Neighbors: item.NeighborCount,
		}
	}

	return BoardView{
		Cells:          cells,
		FlagsRemaining: field.NMines() - field.FlagCount(),
		Status:         s.Status(),
	}
}

// StatusLine は画面最上段に出す文言を返します
// フラグを地雷より多く立てると残り数はマイナスになります
func (v BoardView) StatusLine() string {
	switch v.Status {
	case game.StatusWin:
		return "You won!"
	case game.StatusLoss:
		return "You lost!"
	default:
		return fmt.Sprintf("Flags: %03d", v.FlagsRemaining)
	}
}
