/*
Command wordtree maintains an English word index with translations.

The index is held in memory, either as a red-black tree or as a B-tree. It may be
initialized from an INSERT batch file and updated by further batch files before
a command is run:

	wordtree -backend b -degree 3 -init words.txt search apple
	wordtree -init words.txt -batch remove.txt range a f
	wordtree -init words.txt shell

Commands:

	search <word>            print the translation of word
	range <low> <high>       list entries with low <= word <= high
	insert <word> <text>     add an entry
	delete <word>            remove an entry
	import <file.html>       insert the entries of an HTML definition list
	dump [file]              pre-order dump of the tree structure
	dot [file]               Graphviz DOT of the tree structure
	outline                  indented outline of a B-tree
	check                    validate the tree invariants
	shell                    read commands from stdin, one per line

Flags fall back to the environment variables WORDTREE_BACKEND, WORDTREE_DEGREE,
WORDTREE_COLOR, WORDTREE_TRACE and WORDTREE_TIMING.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes a command line and returns the process exit code.
func run(args []string, in io.Reader, out, errout io.Writer) int {
	cfg, err := parseConfig(args, errout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(errout, "wordtree: %v\n", err)
		return 2
	}
	gtrace.CoreTracer = gologadapter.New()
	setTraceLevel(gtrace.CoreTracer, cfg.Trace)
	a, err := newApp(cfg, out, errout)
	if err != nil {
		fmt.Fprintf(errout, "wordtree: %v\n", err)
		return 1
	}
	if err := a.prepare(); err != nil {
		fmt.Fprintf(errout, "wordtree: %v\n", err)
		return 1
	}
	if len(cfg.Args) == 0 {
		return 0
	}
	if cfg.Args[0] == "shell" {
		a.shell(in)
		return 0
	}
	if err := a.exec(cfg.Args); err != nil {
		fmt.Fprintf(errout, "wordtree: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}
