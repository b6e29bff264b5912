package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVariantArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "eggsposed", false},
		{[]string{"eggsposed_classic"}, "eggsposed_classic", false},
		{[]string{"flappy"}, "", true},
	}

	for _, tt := range tests {
		got, err := variantArg(tt.args)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("variantArg(%v) = %q, %v", tt.args, got, err)
		}
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	defer func() { flagDifficulty, flagFPS = "", 60 }()

	flagDifficulty = "impossible"
	if err := setup(nil, nil); err == nil {
		t.Error("unknown difficulty should fail")
	}

	flagDifficulty, flagFPS = "easy", 0
	if err := setup(nil, nil); err == nil {
		t.Error("zero fps should fail")
	}
}

func TestSetupOpensLogFile(t *testing.T) {
	flagLogPath = filepath.Join(t.TempDir(), "debug.log")
	flagFPS = 60
	defer func() { flagLogPath = "" }()

	if err := setup(nil, nil); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer teardown(nil, nil)

	if logFile == nil {
		t.Fatal("log file not opened")
	}
	logger.Debug("hello")
}

func TestOpenAudioMuted(t *testing.T) {
	flagMute = true
	defer func() { flagMute = false }()

	a, closeAudio := openAudio("eggsposed")
	defer closeAudio()
	if a == nil {
		t.Fatal("openAudio returned nil")
	}
}

func TestSetupRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("timer: {ticks: -5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig, flagFPS = path, 60
	defer func() { flagConfig = "" }()

	if err := setup(nil, nil); err == nil {
		t.Error("invalid custom config should fail")
	}
}
