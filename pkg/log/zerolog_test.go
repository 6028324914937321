package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	at := time.Date(2026, 10, 15, 11, 20, 0, 0, time.UTC)
	z.Info("booked",
		String("client", "Ivanov"),
		Int("slots", 13),
		Bool("ok", true),
		Duration("slot", 40*time.Minute),
		Time("at", at),
		Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "booked" {
		t.Errorf("message = %v, want booked", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["client"] != "Ivanov" {
		t.Errorf("client = %v, want Ivanov", entry["client"])
	}
	if entry["slots"] != float64(13) {
		t.Errorf("slots = %v, want 13", entry["slots"])
	}
	if entry["ok"] != true {
		t.Errorf("ok = %v, want true", entry["ok"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	if _, ok := entry["at"]; !ok {
		t.Error("missing at field")
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	z.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn output")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", String("k", "v"))
	l.Warn("x")
	l.Error("x", Err(errors.New("e")))
}
