package game

import "math/rand/v2"

// cellWidth は画面上の1マスの幅です（半角2文字で描くので2）
const cellWidth = 2

// Session は1ゲーム分の状態を保持・管理します
// 勝敗が決まった後のクリックとフラグ操作はすべて無視します
type Session struct {
	field  *Field
	start  Coordinate
	status GameStatus
}

// NewSession は盤面を作ってゲームを開始します
// 盤面は画面上の (1, 1) を原点として描かれる前提です（0行目はステータス行）
func NewSession(size Coordinate, nMines int, rng *rand.Rand) (*Session, error) {
	field, err := NewField(size, nMines, rng)
	if err != nil {
		return nil, err
	}
	return &Session{
		field: field,
		start: Coordinate{Row: 1, Col: 1},
	}, nil
}

// Field は盤面を返します
func (s *Session) Field() *Field { return s.field }

// Status は現在の進行状態を返します
func (s *Session) Status() GameStatus { return s.status }

// Start は盤面の描画原点（画面上の座標）を返します
func (s *Session) Start() Coordinate { return s.start }

// Reveal は画面上の座標に対する開封操作を処理します
// 盤面の外のクリックは無視します
func (s *Session) Reveal(raw Coordinate) {
	if s.status != StatusInProgress {
		return
	}
	c, ok := s.ConvertAbsoluteToRelative(raw)
	if !ok {
		return
	}
	if s.field.HandleClick(c) == Exploded {
		s.loseGame()
	}
	if s.checkForWin() {
		s.winGame()
	}
}

// ToggleFlag は画面上の座標に対するフラグ操作を処理します
func (s *Session) ToggleFlag(raw Coordinate) {
	if s.status != StatusInProgress {
		return
	}
	c, ok := s.ConvertAbsoluteToRelative(raw)
	if !ok {
		return
	}
	s.field.HandleForceClick(c)
}

// ConvertAbsoluteToRelative は画面上の絶対座標を盤面の座標に変換します
// 1マスが横2文字なので列は2で割ります
// 原点より上・左、または盤面の外なら false を返します
func (s *Session) ConvertAbsoluteToRelative(raw Coordinate) (Coordinate, bool) {
	if raw.Row < s.start.Row || raw.Col < s.start.Col {
		return Coordinate{}, false
	}
	c := Coordinate{
		Row: raw.Row - s.start.Row,
		Col: (raw.Col - s.start.Col) / cellWidth,
	}
	if c.Row >= s.field.size.Row || c.Col >= s.field.size.Col {
		return Coordinate{}, false
	}
	return c, true
}

func (s *Session) loseGame() {
	s.status = StatusLoss
	// TODO: 残っている地雷を開示する
}

func (s *Session) winGame() {
	s.status = StatusWin
}

// checkForWin は地雷以外の全マスが開いたかどうかを判定します
func (s *Session) checkForWin() bool {
	nTotal := s.field.size.Row * s.field.size.Col
	return s.field.nMines == nTotal-s.field.OpenedCount()
}
