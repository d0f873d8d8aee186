package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Width != 10 || cfg.Height != 10 || cfg.Mines != 10 {
		t.Errorf("デフォルト = %dx%d / %d mines, want 10x10 / 10", cfg.Width, cfg.Height, cfg.Mines)
	}
	if cfg.Debug {
		t.Error("デフォルトで Debug が有効になっている")
	}
	if cfg.LogFile == "" {
		t.Error("デフォルトの LogFile が空")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_MINES", "20")
	t.Setenv("MINESWEEPER_WIDTH", "16")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Mines != 20 {
		t.Errorf("Mines = %d, want 20", cfg.Mines)
	}
	if cfg.Width != 16 {
		t.Errorf("Width = %d, want 16", cfg.Width)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("width: 16\nheight: 16\nmines: 40\ndebug: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 16 || cfg.Mines != 40 {
		t.Errorf("設定ファイルの値が反映されていない: %+v", cfg)
	}
	if !cfg.Debug {
		t.Error("debug: true が反映されていない")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(viper.New(), "/no/such/config.yaml"); err == nil {
		t.Error("存在しない設定ファイルでエラーにならない")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("MINESWEEPER_MINES", "92") // 10x10 の上限は 91

	_, err := Load(viper.New(), "")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", Config{Width: 10, Height: 10, Mines: 10}, true},
		{"max mines", Config{Width: 10, Height: 10, Mines: 91}, true},
		{"no mines", Config{Width: 10, Height: 10, Mines: 0}, true},
		{"too many mines", Config{Width: 10, Height: 10, Mines: 92}, false},
		{"board too small", Config{Width: 3, Height: 3, Mines: 1}, false},
		{"zero width", Config{Width: 0, Height: 10, Mines: 0}, false},
		{"negative mines", Config{Width: 10, Height: 10, Mines: -1}, false},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate() = %v, want ErrInvalid", tt.name, err)
		}
	}
}
