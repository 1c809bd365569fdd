// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		opts  options
		input string
		want  string
	}{
		{"Null", options{}, "null", "null\n"},
		{"Object", options{}, `{ "b": [1, 2.5], "a": "x" }`, `{"a":"x","b":[1,2.5]}` + "\n"},
		{"Kind", options{Kind: true}, `[1, 2]`, "array\n"},
		{"Path", options{Path: []string{"b", "1"}}, `{"b": [1, 2.5]}`, "2.5\n"},
		{"PathKind", options{Path: []string{"b"}, Kind: true}, `{"b": "c"}`, "string\n"},
		{"Standard", options{Standard: true}, `["\t"]`, "[\"\t\"]\n"},
		{"JWCC", options{JWCC: true}, "{\n  // comment\n  \"a\": [1, 2,], /* more */\n}", `{"a":[1,2]}` + "\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tc.opts, strings.NewReader(tc.input), &out); err != nil {
				t.Fatalf("run: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		opts  options
		input string
		want  string
	}{
		{"Syntax", options{}, `{"a":}`, "stdin: at 1:5 (offset 5): map: expected value"},
		{"Escape", options{}, `["\t"]`, "array > string: invalid escape sequence"},
		{"Comment", options{}, "[1, // no\n 2]", "array: expected value"},
		{"Depth", options{MaxDepth: 2}, `[[[]]]`, "nesting too deep"},
		{"BadJWCC", options{JWCC: true}, `[1, 2`, "stdin: "},
		{"NoKey", options{Path: []string{"z"}}, `{"a": 1}`, `path "z": key "z" not found`},
		{"BadOffset", options{Path: []string{"x"}}, `[1]`, `invalid array offset "x"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.opts, strings.NewReader(tc.input), &out)
			if err == nil {
				t.Fatalf("run: got output %q, want error", out.String())
			}
			if got := err.Error(); !strings.Contains(got, tc.want) {
				t.Errorf("run: got error %q, want it to contain %q", got, tc.want)
			}
		})
	}

	t.Run("Cause", func(t *testing.T) {
		err := run(options{}, strings.NewReader(`[] []`), new(bytes.Buffer))
		if !errors.Is(err, jvalue.TrailingInput) {
			t.Errorf("run: got %v, want %v", err, jvalue.TrailingInput)
		}
	})
}

func TestFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(`{"a": {"b": [true]}}`), 0600); err != nil {
		t.Fatalf("Write input: %v", err)
	}

	var opts options
	p, err := kong.New(&opts, kong.Name("jvparse"))
	if err != nil {
		t.Fatalf("New parser: %v", err)
	}
	if _, err := p.Parse([]string{"--jwcc", "-s", "--max-depth=10", "-p", "a", "-p", "b", path}); err != nil {
		t.Fatalf("Parse flags: %v", err)
	}
	want := options{Input: path, JWCC: true, Standard: true, MaxDepth: 10, Path: []string{"a", "b"}}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Options (-want, +got):\n%s", diff)
	}

	var out bytes.Buffer
	if err := run(opts, strings.NewReader("unused"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "[true]\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}
