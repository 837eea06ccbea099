package main

import (
	"bytes"
	"errors"
	"flag"
	"reflect"
	"testing"
)

func TestParseRootArgs_PositionalFile(t *testing.T) {
	root, rest, err := parseRootArgs([]string{"data.csv"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseRootArgs returned error: %v", err)
	}
	if len(root.overrides) != 0 {
		t.Fatalf("expected no overrides, got %v", root.overrides)
	}
	if !reflect.DeepEqual(rest, []string{"data.csv"}) {
		t.Fatalf("unexpected rest: %v", rest)
	}
}

func TestParseRootArgs_CollectsOverrides(t *testing.T) {
	args := []string{
		"-c", "max_column_width=12",
		"-no-mouse",
		"-log-level=debug",
		"-sheet", "Q3",
		"-config", "/tmp/cfg.toml",
		"book.xlsx",
	}
	root, rest, err := parseRootArgs(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseRootArgs returned error: %v", err)
	}
	wantOverrides := []string{"max_column_width=12", "mouse=false", "log_level=debug"}
	if !reflect.DeepEqual(root.overrides, wantOverrides) {
		t.Fatalf("unexpected overrides: got %v, want %v", root.overrides, wantOverrides)
	}
	if root.sheet != "Q3" || root.cfgPath != "/tmp/cfg.toml" {
		t.Fatalf("unexpected root args: %+v", root)
	}
	if !reflect.DeepEqual(rest, []string{"book.xlsx"}) {
		t.Fatalf("unexpected rest args: %v", rest)
	}
}

func TestParseRootArgs_Help(t *testing.T) {
	var out bytes.Buffer
	_, _, err := parseRootArgs([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("usage: dfview")) {
		t.Fatalf("usage not printed: %q", out.String())
	}
}
