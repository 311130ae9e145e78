package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", "x")
	log.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{
		`"level":"info"`, `"message":"inf"`, `"a":1`,
		`"level":"warn"`, `"b":"x"`,
		`"level":"error"`, `"message":"err"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.With("module", "api").Info(context.Background(), "hello")

	out := buf.String()
	if !strings.Contains(out, `"module":"api"`) {
		t.Fatalf("expected module attribute in output:\n%s", out)
	}
}

func TestZerologLogger_SkipsNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "odd", 42, "ignored", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("expected valid pair to survive:\n%s", out)
	}
}
