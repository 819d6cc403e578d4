package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"trace", zerolog.TraceLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: FormatJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	cl := Component(l, "loader")
	cl.Info().Str("file", "base.toml").Msg("loaded")
	l.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"component":"loader"`) {
		t.Errorf("output missing component: %s", out)
	}
	if !strings.Contains(out, `"file":"base.toml"`) {
		t.Errorf("output missing field: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Output: &buf, NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug().Msg("resolving")
	if !strings.Contains(buf.String(), "resolving") {
		t.Errorf("console output = %q", buf.String())
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New() with unknown format should fail")
	}
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() with unknown level should fail")
	}
}
