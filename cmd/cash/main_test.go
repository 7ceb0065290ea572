package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eugenenazirov/cs50-week1/internal/application"
	"github.com/eugenenazirov/cs50-week1/internal/cli"
)

func TestCommandPrintsCoinCount(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	streams := application.Streams{
		In:  strings.NewReader("abc\n41\n"),
		Out: &out,
		Err: &errOut,
	}

	if err := cli.Execute(context.Background(), command, nil, streams); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := "Change owed: Change owed: 4\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if !strings.HasPrefix(errOut.String(), "Parse Error: ") {
		t.Fatalf("expected parse diagnostic, got %q", errOut.String())
	}
}
