package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStdLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("ignored", nil)
	l.Warn("kept", Fields{"k": "v"})

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "k=v") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestStdLogger_JSONWithBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "dog-life", Output: &buf}).
		With(Fields{"session_id": "s-1"})

	l.Error("audio failed", Fields{"error": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%q)", err, buf.String())
	}
	if entry["app"] != "dog-life" || entry["session_id"] != "s-1" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("errors should be rendered as strings, got %v", entry["error"])
	}
	if entry["level"] != "error" {
		t.Fatalf("expected level=error, got %v", entry["level"])
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "": Info, "WARNING": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf})

	ctx := IntoContext(context.Background(), l)
	FromContext(ctx, nil).Info("hello", nil)
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected logger from context to be used, got %q", buf.String())
	}

	if FromContext(context.Background(), nil) == nil {
		t.Fatalf("expected nop fallback")
	}
}
