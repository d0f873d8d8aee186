package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDisabledReturnsNop(t *testing.T) {
	logger := New("anywhere.log", false)
	if logger == nil {
		t.Fatal("New() = nil")
	}
	// Nop ロガーなのでどこにも書かずに済むはず
	logger.Info("should go nowhere")

	if _, err := os.Stat("anywhere.log"); err == nil {
		t.Error("無効なのにログファイルが作られた")
	}
}

func TestNewEmptyPathReturnsNop(t *testing.T) {
	logger := New("", true)
	logger.Info("should go nowhere")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger := New(path, true)
	logger.Debug("hello")
	logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ログファイルが読めない: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("ログにメッセージが無い: %q", data)
	}
}
