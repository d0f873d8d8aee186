package solver

import (
	"minesweeper/game"
)

// maxSegmentSize はバックトラック探索にかける未開封マス数の上限です
// これを超えるセグメントは組み合わせが多すぎるので飛ばします
const maxSegmentSize = 18

// TankSolver は境界マスの全組み合わせをバックトラックで調べる構造体です
type TankSolver struct {
	Field *game.Field
}

// NewTankSolver はタンクソルバーを初期化します
func NewTankSolver(f *game.Field) *TankSolver {
	return &TankSolver{Field: f}
}

// Solve はタンクアルゴリズムを実行し、確定した安全手か地雷、
// どちらも無ければ地雷確率が最も低い推測手を返します
func (ts *TankSolver) Solve() *Move {
	// 1. 全ての境界マスと関連する数字マスをグループ化（連結成分分解）
	segments := ts.createSegments()

	var bestMove *Move
	bestProb := 1.0 // 1.0 = 地雷確率100% (最悪)

	// 各セグメントごとに独立して解く
	for _, seg := range segments {
		if len(seg.unknowns) > maxSegmentSize {
			continue
		}

		solutions := ts.solveSegment(seg)
		if len(solutions) == 0 {
			continue // 解なし（矛盾）
		}

		// 各マスの地雷確率を計算
		counts := make([]int, len(seg.unknowns))
		for _, sol := range solutions {
			for i, isMine := range sol {
				if isMine {
					counts[i]++
				}
			}
		}

		total := float64(len(solutions))
		for i, count := range counts {
			prob := float64(count) / total
			c := seg.unknowns[i]

			// 確定安全 (0%)
			if prob == 0.0 {
				return &Move{Coord: c, Type: MoveOpen, Strategy: "Tank", Confidence: 1.0}
			}
			// 確定地雷 (100%)
			if prob == 1.0 && !ts.Field.ItemAt(c).IsFlagged {
				return &Move{Coord: c, Type: MoveFlag, Strategy: "Tank", Confidence: 1.0}
			}

			// 最善手（確率）の更新。確率が低いほうが安全
			if prob < bestProb {
				bestProb = prob
				bestMove = &Move{
					Coord:      c,
					Type:       MoveOpen,
					Strategy:   "Tank(Prob)",
					Confidence: 1.0 - prob,
				}
			}
		}
	}

	return bestMove
}

// --- セグメント（連結成分）管理 ---

type segment struct {
	unknowns []game.Coordinate // このセグメントに含まれる未開封マス
	rules    []rule            // このセグメント内の数字マス制約
}

type rule struct {
	cells []int // unknowns の添字のリスト
	mines int   // 必要な地雷数
}

func (ts *TankSolver) createSegments() []*segment {
	// 1. 全ての「数字マス」と「隣接する未開封マス」の関係をリスト化
	unknownSet := make(map[game.Coordinate]struct{})
	var numberedCells []game.Coordinate

	for c, item := range ts.Field.Items() {
		if !item.IsOpened || item.NeighborCount == 0 {
			continue
		}
		_, flags, hidden := neighborsInfo(ts.Field, c)
		if flags == item.NeighborCount {
			continue // フラグで満たされた数字マスは制約にならない
		}
		if len(hidden) == 0 {
			continue
		}
		for _, n := range hidden {
			unknownSet[n] = struct{}{}
		}
		numberedCells = append(numberedCells, c)
	}

	// 2. 連結成分分解
	// 未開封マスをノード、同じ数字マスに接することをエッジとしたグラフを作る
	adj := make(map[game.Coordinate][]game.Coordinate)
	for _, numCoord := range numberedCells {
		_, _, neighbors := neighborsInfo(ts.Field, numCoord)
		for i := 0; i < len(neighbors)-1; i++ {
			for j := i + 1; j < len(neighbors); j++ {
				adj[neighbors[i]] = append(adj[neighbors[i]], neighbors[j])
				adj[neighbors[j]] = append(adj[neighbors[j]], neighbors[i])
			}
		}
	}

	visited := make(map[game.Coordinate]bool)
	var segments []*segment

	// グループ分けの順番を安定させるため、map ではなく盤面順で走査する
	for start := range ts.Field.Items() {
		if _, ok := unknownSet[start]; !ok {
			continue
		}
		if visited[start] {
			continue
		}

		// BFS でグループ探索
		var group []game.Coordinate
		queue := []game.Coordinate{start}
		visited[start] = true

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			group = append(group, curr)

			for _, neighbor := range adj[curr] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}

		// セグメント作成
		seg := &segment{unknowns: group}
		localIndex := make(map[game.Coordinate]int, len(group))
		for i, c := range group {
			localIndex[c] = i
		}

		// ルール生成
		// 数字マスの未開封隣接マスは連結しているので、最初の1つが
		// このセグメントに含まれていれば残りも全て含まれている
		for _, numCoord := range numberedCells {
			_, flags, neighbors := neighborsInfo(ts.Field, numCoord)
			if len(neighbors) == 0 {
				continue
			}
			if _, ok := localIndex[neighbors[0]]; !ok {
				continue
			}
			r := rule{
				cells: make([]int, len(neighbors)),
				mines: ts.Field.ItemAt(numCoord).NeighborCount - flags,
			}
			for i, n := range neighbors {
				r.cells[i] = localIndex[n]
			}
			seg.rules = append(seg.rules, r)
		}
		segments = append(segments, seg)
	}

	return segments
}

// --- 探索ロジック ---

func (ts *TankSolver) solveSegment(seg *segment) [][]bool {
	var solutions [][]bool
	config := make([]bool, len(seg.unknowns))
	ts.backtrack(seg, 0, config, &solutions)
	return solutions
}

func (ts *TankSolver) backtrack(seg *segment, index int, config []bool, solutions *[][]bool) {
	if index == len(seg.unknowns) {
		if ts.isValid(seg, config, true) {
			sol := make([]bool, len(config))
			copy(sol, config)
			*solutions = append(*solutions, sol)
		}
		return
	}

	// 枝刈り
	if !ts.isValid(seg, config, false) {
		return
	}

	// 仮定1: 地雷
	config[index] = true
	ts.backtrack(seg, index+1, config, solutions)

	// 仮定2: 安全
	config[index] = false
	ts.backtrack(seg, index+1, config, solutions)
}

func (ts *TankSolver) isValid(seg *segment, config []bool, isFinal bool) bool {
	for _, r := range seg.rules {
		mines := 0
		for _, idx := range r.cells {
			if config[idx] {
				mines++
			}
		}

		if isFinal {
			// 最終チェック: 地雷数がぴったり一致すること
			if mines != r.mines {
				return false
			}
		} else {
			// 途中チェック: 既に地雷数がオーバーしていたらアウト
			if mines > r.mines {
				return false
			}
		}
	}
	return true
}
