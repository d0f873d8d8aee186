package game

// Coordinate は盤面上の1マスを (Row, Col) で指し示す値型です
type Coordinate struct {
	Row int
	Col int
}

// FieldItem は1マス分の状態をまとめたものです（描画やソルバーが読みます）
type FieldItem struct {
	IsOpened      bool // すでに開けられたか
	IsMined       bool // 地雷かどうか
	IsFlagged     bool // フラグが立てられているか
	NeighborCount int  // 周囲8マスにある地雷の数
}

// ClickResult はクリック処理の結果です
type ClickResult int

const (
	Safe ClickResult = iota
	Exploded
)

// GameStatus はゲームの進行状態です
// 一度 StatusWin / StatusLoss になったら以降は変わりません
type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusWin
	StatusLoss
)
