package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/wordtree"
	"github.com/npillmayer/wordtree/btree"
	"github.com/npillmayer/wordtree/formatter"
	"github.com/npillmayer/wordtree/rbtree"
	"github.com/npillmayer/wordtree/textfile"
)

var errUsage = errors.New("usage")

// app is a word index together with its output settings.
type app struct {
	cfg    *Config
	idx    wordtree.Index
	rb     *rbtree.Tree // set for the red-black backend
	b      *btree.Tree  // set for the B-tree backend
	format *formatter.Config
	out    io.Writer
	errout io.Writer
}

func newApp(cfg *Config, out, errout io.Writer) (*app, error) {
	a := &app{cfg: cfg, out: out, errout: errout}
	switch cfg.Backend {
	case "b":
		tree, err := btree.New(btree.Config{Degree: cfg.Degree})
		if err != nil {
			return nil, err
		}
		a.b, a.idx = tree, tree
	default:
		a.rb = rbtree.New()
		a.idx = a.rb
	}
	a.format = formatter.ConfigFromTerminal()
	switch cfg.Color {
	case "always":
		a.format.Color = true
	case "never":
		a.format.Color = false
	}
	return a, nil
}

// prepare loads the initial batch and applies the further batches. All files
// are parsed before the index is touched.
func (a *app) prepare() error {
	if a.cfg.Init != "" {
		batch, err := textfile.Load(a.cfg.Init)
		if err != nil {
			return err
		}
		if batch.Mode != wordtree.ModeInsert {
			return fmt.Errorf("%s: initialization requires an INSERT batch", a.cfg.Init)
		}
		a.apply(a.cfg.Init, batch)
	}
	batches, err := textfile.LoadAll(a.cfg.Batches...)
	if err != nil {
		return err
	}
	for i, batch := range batches {
		a.apply(a.cfg.Batches[i], batch)
	}
	return nil
}

// apply runs a batch on the index and reports failed operations. With timing
// enabled, progress records are printed while the batch runs.
func (a *app) apply(name string, batch *wordtree.Batch) {
	var results []wordtree.Result
	if a.cfg.Timing {
		monitor := wordtree.NewMonitor()
		ch, err := monitor.Subscribe(context.Background(), 64)
		if err != nil {
			monitor.Close()
			results = a.idx.BulkLoad(batch)
		} else {
			done := make(chan struct{})
			go func() {
				defer close(done)
				for p := range ch {
					fmt.Fprintf(a.errout, "%s: %s\n", name, p)
				}
			}()
			results = wordtree.Apply(a.idx, batch, wordtree.WithMonitor(monitor))
			monitor.Close()
			<-done
		}
	} else {
		results = a.idx.BulkLoad(batch)
	}
	fmt.Fprintf(a.out, "%s: %s batch\n", name, batch.Mode)
	formatter.Results(a.out, results, a.format)
}

// exec runs a single command.
func (a *app) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "search":
		if len(args) != 1 {
			return fmt.Errorf("%w: search <word>", errUsage)
		}
		if v, ok := a.idx.Search(args[0]); ok {
			return formatter.Listing(a.out, []wordtree.Entry{{Key: args[0], Value: v}}, a.format)
		}
		fmt.Fprintf(a.out, "%s: not found\n", args[0])
	case "range":
		if len(args) != 2 {
			return fmt.Errorf("%w: range <low> <high>", errUsage)
		}
		entries := a.idx.RangeSearch(args[0], args[1])
		if a.cfg.HTML != "" {
			return writeFile(a.cfg.HTML, func(w io.Writer) error {
				return formatter.WriteHTML(w, entries)
			})
		}
		if len(entries) == 0 {
			fmt.Fprintln(a.out, "no entries in range")
			return nil
		}
		return formatter.Listing(a.out, entries, a.format)
	case "insert":
		if len(args) < 2 {
			return fmt.Errorf("%w: insert <word> <text>", errUsage)
		}
		if err := a.idx.Insert(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "inserted %s\n", args[0])
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("%w: delete <word>", errUsage)
		}
		if err := a.idx.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted %s\n", args[0])
	case "import":
		if len(args) != 1 {
			return fmt.Errorf("%w: import <file.html>", errUsage)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		batch, err := formatter.BatchFromHTML(f)
		if err != nil {
			return err
		}
		a.apply(args[0], batch)
	case "dump":
		if len(args) == 1 {
			return writeFile(args[0], a.idx.Dump)
		}
		if a.rb != nil {
			return formatter.DumpRB(a.out, a.rb, a.format)
		}
		return formatter.DumpB(a.out, a.b, a.format)
	case "dot":
		dot := func(w io.Writer) error {
			if a.rb != nil {
				return formatter.RBToDot(w, a.rb)
			}
			return formatter.BToDot(w, a.b)
		}
		if len(args) == 1 {
			return writeFile(args[0], dot)
		}
		return dot(a.out)
	case "outline":
		if a.b == nil {
			return fmt.Errorf("%w: outline requires the B-tree backend", errUsage)
		}
		return formatter.Outline(a.out, a.b, a.format)
	case "check":
		if err := a.idx.Check(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "ok, %d entries\n", a.idx.Len())
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

// shell reads commands from in, one per line, until end of input or "quit".
// Errors are reported and do not end the session.
func (a *app) shell(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		if err := a.exec(args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			gtrace.CoreTracer.Infof("shell: %v", err)
		}
	}
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
