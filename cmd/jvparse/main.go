// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jvparse parses a JSON document and prints its compact encoding,
// or a description of the first syntax error it contains.
//
// Usage:
//
//	jvparse [flags] [input-file]
//
// If no input file is given, the document is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jvalue"
	"github.com/tailscale/hujson"
)

type options struct {
	Input    string   `arg:"" optional:"" type:"existingfile" help:"Input file (default stdin)."`
	JWCC     bool     `short:"c" help:"Accept comments and trailing commas (JWCC) in the input."`
	Standard bool     `short:"s" help:"Accept the full RFC 8259 string escape set."`
	MaxDepth int      `default:"512" help:"Maximum nesting depth of arrays and objects (negative for no limit)."`
	Path     []string `short:"p" sep:"none" help:"Print the value at this path (object keys and array offsets)."`
	Kind     bool     `short:"k" help:"Print the kind of the selected value instead of its encoding."`
}

func main() {
	var opts options
	ctx := kong.Parse(&opts,
		kong.Name("jvparse"),
		kong.Description("Parse a JSON document and print its compact encoding."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(opts, os.Stdin, os.Stdout))
}

func run(opts options, stdin io.Reader, w io.Writer) error {
	name := "stdin"
	var data []byte
	var err error
	if opts.Input != "" {
		name = opts.Input
		data, err = os.ReadFile(opts.Input)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	// Standardizing replaces comments and trailing commas with whitespace,
	// so error offsets still refer to the original input.
	if opts.JWCC {
		data, err = hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	popts := jvalue.Options{MaxDepth: opts.MaxDepth}
	if opts.Standard {
		popts.Escapes = jvalue.StandardEscapes
	}
	v, err := popts.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	v, err = resolvePath(v, opts.Path)
	if err != nil {
		return err
	}
	if opts.Kind {
		_, err = fmt.Fprintln(w, v.Kind())
	} else {
		_, err = fmt.Fprintln(w, v.JSON())
	}
	return err
}

// resolvePath follows path from root. A path element denotes an array offset
// if the value it applies to is an array, otherwise an object key.
func resolvePath(root jvalue.Value, path []string) (jvalue.Value, error) {
	cur := root
	for _, elt := range path {
		var key any = elt
		if _, ok := cur.(jvalue.Array); ok {
			n, err := strconv.Atoi(elt)
			if err != nil {
				return nil, fmt.Errorf("invalid array offset %q", elt)
			}
			key = n
		}
		next, err := jvalue.Path(cur, key)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", elt, err)
		}
		cur = next
	}
	return cur, nil
}
