// Package tui はゲームを Bubble Tea のイベントループに載せる層です
// マウスとキーの入力を Session の操作に変換し、盤面を描画します
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"minesweeper/game"
	"minesweeper/viewmodel"
)

// Model はゲーム画面本体です
type Model struct {
	session *game.Session
	size    game.Coordinate
	nMines  int
	log     *zap.Logger
}

// New はゲームを初期化します
// logger が nil の場合は何も記録しません
func New(size game.Coordinate, nMines int, logger *zap.Logger) (Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	session, err := game.NewSession(size, nMines, nil)
	if err != nil {
		return Model{}, err
	}
	return Model{
		session: session,
		size:    size,
		nMines:  nMines,
		log:     logger,
	}, nil
}

// Session は現在のゲームを返します
func (m Model) Session() *game.Session { return m.session }

// Init は Bubble Tea の初期化フックです。追加のコマンドはありません
func (m Model) Init() tea.Cmd {
	return nil
}

// Update は入力イベントを処理します
// 左クリック: 開封、Shift+左クリック または 右クリック: フラグ
// q / ctrl+c: 終了、r: 同じ設定でもう1ゲーム
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			session, err := game.NewSession(m.size, m.nMines, nil)
			if err != nil {
				// 一度作れた設定なので起こらないはず
				m.log.Error("restart failed", zap.Error(err))
				return m, nil
			}
			m.log.Debug("restart")
			m.session = session
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		raw := game.Coordinate{Row: msg.Y, Col: msg.X}
		switch {
		case msg.Button == tea.MouseButtonLeft && !msg.Shift:
			m.log.Debug("reveal", zap.Int("row", raw.Row), zap.Int("col", raw.Col))
			m.session.Reveal(raw)
		case msg.Button == tea.MouseButtonLeft && msg.Shift,
			msg.Button == tea.MouseButtonRight && !msg.Shift:
			m.log.Debug("toggle flag", zap.Int("row", raw.Row), zap.Int("col", raw.Col))
			m.session.ToggleFlag(raw)
		}
		return m, nil
	}

	return m, nil
}

// View は画面全体を文字列で組み立てます
// 0行目がステータス行、盤面は (1, 1) から始まります
// Session の座標変換と同じレイアウトです
func (m Model) View() string {
	view := viewmodel.New(m.session)
	var b strings.Builder

	b.WriteString(renderStatus(view))
	b.WriteString("\n")

	for row, cells := range view.Cells {
		b.WriteString(" ")
		for col, cell := range cells {
			b.WriteString(renderCell(game.Coordinate{Row: row, Col: col}, cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" click: open  shift+click/right click: flag  r: restart  q: quit"))
	b.WriteString("\n")
	return b.String()
}
