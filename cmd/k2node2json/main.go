// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program k2node2json converts graph nodes copied from the editor, in the
// object-dump text format, to JSON.
//
// Usage:
//
//	k2node2json -i nodes.txt [-o output.json] [--pretty] [--verbose]
//
// The output is a JSON array with one element per object block. If the input
// cannot be read or parsed, no output is written and the exit status is 1.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/bpgraph/ast"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type settings struct {
	Input   string
	Output  string
	Pretty  bool
	Verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var set settings
	cmd := &cobra.Command{
		Use:   "k2node2json -i <input> [-o <output>]",
		Short: "Convert copied graph nodes to JSON",
		Long: `Convert graph nodes copied from the editor to JSON.

The input is the text placed on the clipboard when nodes are copied: a
sequence of "Begin Object ... End Object" blocks. The output is a JSON
array with one element per block, written to output.json by default.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(set, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&set.Input, "input", "i", "", "Path of the copied node text (required)")
	f.StringVarP(&set.Output, "output", "o", "output.json", `Path of the JSON output ("-" for stdout)`)
	f.BoolVarP(&set.Pretty, "pretty", "p", false, "Write indented JSON")
	f.BoolVarP(&set.Verbose, "verbose", "v", false, "Log parser traces to stderr")
	cmd.MarkFlagRequired("input")
	return cmd
}

func run(set settings, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if set.Verbose {
		level = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := os.ReadFile(set.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	doc, err := ast.NewParser().WithLogger(lg).Parse(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("parse %s: %w", set.Input, err)
	}

	var buf bytes.Buffer
	if set.Pretty {
		if err := ast.Format(&buf, doc); err != nil {
			return fmt.Errorf("format output: %w", err)
		}
	} else {
		buf.WriteString(doc.JSON())
		buf.WriteByte('\n')
	}

	if set.Output == "-" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(set.Output, buf.Bytes(), 0644)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	lg.Debug("wrote output", "path", set.Output, "objects", len(doc), "bytes", buf.Len())
	return nil
}
