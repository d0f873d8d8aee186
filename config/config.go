// Package config はゲームの設定の読み込みと検証を行います
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid は盤面として成立しない設定を表すエラーです
var ErrInvalid = errors.New("invalid configuration")

// safeZoneSize は初手で必ず空ける範囲（3x3）のマス数です
const safeZoneSize = 9

// Config はゲーム全体の設定です
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Mines  int `mapstructure:"mines"`

	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
}

// Load は設定を読み込んで検証します
// 優先順はフラグ > 環境変数 (MINESWEEPER_*) > 設定ファイル > デフォルト
// フラグの反映は呼び出し側が v.BindPFlag で済ませておきます
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("minesweeper")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults は既定値（10x10・地雷10個）を登録します
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 10)
	v.SetDefault("height", 10)
	v.SetDefault("mines", 10)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "minesweeper.log")
}

// Validate は盤面として成立する設定かどうかを確認します
// 地雷数の上限は「全マス - 9」です。初手の周囲3x3を空ける分を差し引きます
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	maxMines := c.Width*c.Height - safeZoneSize
	if c.Mines < 0 || c.Mines > maxMines {
		return fmt.Errorf("%w: %d mines on %dx%d board (max %d)",
			ErrInvalid, c.Mines, c.Width, c.Height, maxMines)
	}
	return nil
}
