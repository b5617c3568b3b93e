package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorswitch/internal/match"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, closer, err := newLogger(tt.level, "", true)
			if tt.wantErr {
				if err == nil {
					t.Errorf("newLogger(%q) expected error", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger(%q) error: %v", tt.level, err)
			}
			defer closer()
			if l.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %v, expected %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "colorswitch.log")

	l, closer, err := newLogger("info", path, true)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	l.Info("match ended", "score", 3)
	if err := closer(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "match ended") {
		t.Errorf("log file = %q, expected it to contain the message", data)
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"play", []string{"play"}, true},
		{"menu", []string{"menu"}, true},
		{"serve", []string{"serve"}, false},
		{"scores", []string{"scores"}, false},
		{"scores tui", []string{"scores", "--tui"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, rest, err := rootCmd.Find(tt.args)
			if err != nil {
				t.Fatalf("Find(%v) error: %v", tt.args, err)
			}
			if err := cmd.ParseFlags(rest); err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}
			defer cmd.Flags().Set("tui", "false")
			if got := isInteractive(cmd); got != tt.want {
				t.Errorf("isInteractive(%s) = %v, expected %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSelectedMode(t *testing.T) {
	if got := selectedMode(false); got != match.ModeSolo {
		t.Errorf("selectedMode(false) = %v, expected solo", got)
	}
	if got := selectedMode(true); got != match.ModeVersus {
		t.Errorf("selectedMode(true) = %v, expected versus", got)
	}
	if got := versusFlag(match.ModeVersus); got != " --versus" {
		t.Errorf("versusFlag(versus) = %q", got)
	}
}
