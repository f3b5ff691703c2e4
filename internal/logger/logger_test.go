package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := toZapLevel(tt.in); got != tt.want {
			t.Errorf("toZapLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToFileAppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reddypet.log")

	log, closeFn, err := ToFile(WarnLevel, path)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	log.Infow("hidden below level")
	log.Warnw("failed to save pet", "err", "disk full")
	_ = log.Sync()
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden below level") {
		t.Errorf("info record written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "failed to save pet") || !strings.Contains(out, "disk full") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestGetReturnsSingleton(t *testing.T) {
	if Get(DebugLevel) != Get(ErrorLevel) {
		t.Error("Get should return the same logger")
	}
}

func TestNopDiscards(t *testing.T) {
	Nop().Errorw("nothing to see", "k", "v")
}
