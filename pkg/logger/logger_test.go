package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.WarnLevel,
		"verbose": zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	Init(Options{Level: "debug", Output: &second})

	l := Get()
	l.Info().Msg("hello")
	l.Debug().Msg("hidden")

	if !strings.Contains(first.String(), "hello") {
		t.Fatalf("expected message in first writer, got %q", first.String())
	}
	if strings.Contains(first.String(), "hidden") {
		t.Fatalf("debug message leaked at info level")
	}
	if second.Len() != 0 {
		t.Fatalf("second Init must be ignored")
	}
}

func TestGet_BeforeInitIsNop(t *testing.T) {
	Reset()
	l := Get()
	l.Error().Msg("dropped") // must not panic
}
