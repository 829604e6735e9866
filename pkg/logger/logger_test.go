package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetMode(t *testing.T) {
	t.Cleanup(func() { SetMode("release") })

	SetMode("debug")
	if Level() != zap.DebugLevel {
		t.Fatalf("level = %v, want debug", Level())
	}

	SetMode("release")
	if Level() != zap.InfoLevel {
		t.Fatalf("level = %v, want info", Level())
	}
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Log == nil {
		t.Fatalf("Log must never be nil")
	}
	Log.Info("logging before InitLogger must not panic")
}
