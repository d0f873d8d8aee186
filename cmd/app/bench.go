package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"minesweeper/game"
	"minesweeper/solver"
)

// benchResult はソルバーの自己対戦の集計です
type benchResult struct {
	wins    int
	losses  int
	stalls  int
	moves   int
	guesses int
}

func newBenchCmd() *cobra.Command {
	var (
		games  int
		width  int
		height int
		mines  int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "ソルバーに自己対戦させて勝率を計測します",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			} else {
				rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}

			size := game.Coordinate{Row: height, Col: width}
			var result benchResult
			for i := 0; i < games; i++ {
				if err := playOneGame(size, mines, rng, &result); err != nil {
					return err
				}
			}

			fmt.Printf("games:  %d (%dx%d, %d mines)\n", games, width, height, mines)
			fmt.Printf("wins:   %d (%.1f%%)\n", result.wins, float64(result.wins)*100/float64(games))
			fmt.Printf("losses: %d\n", result.losses)
			if result.stalls > 0 {
				fmt.Printf("stalls: %d\n", result.stalls)
			}
			fmt.Printf("moves:  %d (guesses: %d)\n", result.moves, result.guesses)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&games, "games", 1000, "対戦回数")
	flags.IntVar(&width, "width", 10, "盤面の横のマス数")
	flags.IntVar(&height, "height", 10, "盤面の縦のマス数")
	flags.IntVar(&mines, "mines", 10, "地雷の数")
	flags.Uint64Var(&seed, "seed", 0, "乱数シード (0 で自動)")

	return cmd
}

// playOneGame はソルバーだけで1ゲーム進めて結果を集計に足します
func playOneGame(size game.Coordinate, mines int, rng *rand.Rand, result *benchResult) error {
	field, err := game.NewField(size, mines, rng)
	if err != nil {
		return err
	}
	bot := solver.New(field, rng)

	nTotal := size.Row * size.Col
	for {
		if nTotal-field.OpenedCount() == field.NMines() {
			result.wins++
			return nil
		}

		move := bot.NextMove()
		if move == nil {
			// 打つ手なし
			result.stalls++
			return nil
		}
		result.moves++
		if move.IsGuess {
			result.guesses++
		}

		switch move.Type {
		case solver.MoveOpen:
			if field.HandleClick(move.Coord) == game.Exploded {
				result.losses++
				return nil
			}
		case solver.MoveFlag:
			field.HandleForceClick(move.Coord)
		}
	}
}
