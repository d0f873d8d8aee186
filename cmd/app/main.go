package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minesweeper/config"
	"minesweeper/game"
	"minesweeper/logx"
	"minesweeper/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "minesweeper",
		Short:         "ターミナルで遊ぶマインスイーパー",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// マウス入力と全画面描画を使うので端末以外では動かしません
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("not a tty")
			}

			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}

			logger := logx.New(cfg.LogFile, cfg.Debug)
			defer logger.Sync()

			size := game.Coordinate{Row: cfg.Height, Col: cfg.Width}
			model, err := tui.New(size, cfg.Mines, logger)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	flags := cmd.Flags()
	flags.Int("width", 10, "盤面の横のマス数")
	flags.Int("height", 10, "盤面の縦のマス数")
	flags.Int("mines", 10, "地雷の数")
	flags.Bool("debug", false, "デバッグログをファイルに書く")
	flags.String("log-file", "minesweeper.log", "デバッグログの出力先")
	flags.StringVar(&configPath, "config", "", "設定ファイル (yaml)")

	v.BindPFlag("width", flags.Lookup("width"))
	v.BindPFlag("height", flags.Lookup("height"))
	v.BindPFlag("mines", flags.Lookup("mines"))
	v.BindPFlag("debug", flags.Lookup("debug"))
	v.BindPFlag("log_file", flags.Lookup("log-file"))

	cmd.AddCommand(newBenchCmd())

	return cmd
}
