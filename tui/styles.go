package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"minesweeper/game"
	"minesweeper/viewmodel"
)

// 配色は ANSI 256色
// 開封済み・未開封それぞれの背景を2色ずつ使って市松模様にします
var (
	colorNumber = lipgloss.Color("21")  // 数字（青）
	colorDanger = lipgloss.Color("196") // 地雷・フラグ・敗北（赤）
	colorWin    = lipgloss.Color("46")
	colorStatus = lipgloss.Color("231")

	openedDark  = lipgloss.Color("253")
	openedLight = lipgloss.Color("231")
	closedDark  = lipgloss.Color("41")
	closedLight = lipgloss.Color("48")

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// cellBackground は市松模様の背景色を返します
func cellBackground(opened bool, even bool) lipgloss.Color {
	switch {
	case opened && even:
		return openedDark
	case opened:
		return openedLight
	case even:
		return closedDark
	default:
		return closedLight
	}
}

// renderCell は1マスを半角2文字で描きます
// 空白 / " P"（フラグ） / " *"（地雷） / " N"（周囲の地雷数）
func renderCell(c game.Coordinate, cell viewmodel.CellView) string {
	bg := cellBackground(cell.Opened, (c.Row+c.Col)%2 == 0)
	style := lipgloss.NewStyle().Background(bg)

	switch {
	case !cell.Opened && cell.Flagged:
		return style.Foreground(colorDanger).Render(" P")
	case !cell.Opened:
		return style.Render("  ")
	case cell.Mined:
		return style.Foreground(colorDanger).Render(" *")
	case cell.Neighbors == 0:
		return style.Render("  ")
	default:
		return style.Foreground(colorNumber).Render(fmt.Sprintf(" %d", cell.Neighbors))
	}
}

// renderStatus はステータス行を描きます
func renderStatus(view viewmodel.BoardView) string {
	style := lipgloss.NewStyle()
	switch view.Status {
	case game.StatusWin:
		style = style.Foreground(colorWin)
	case game.StatusLoss:
		style = style.Foreground(colorDanger)
	default:
		style = style.Foreground(colorStatus)
	}
	return style.Render(view.StatusLine())
}
