package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Config holds the command line settings.
type Config struct {
	Backend string   // "rb" or "b"
	Degree  int      // minimum degree of a B-tree
	Init    string   // INSERT batch to initialize the index from
	Batches []string // batches applied after initialization
	Color   string   // "auto", "always" or "never"
	Trace   string   // trace level
	Timing  bool     // print progress records of batches
	HTML    string   // write range results to an HTML file
	Args    []string // command and its arguments
}

// fileList collects the values of a repeatable flag.
type fileList []string

func (l *fileList) String() string {
	return strings.Join(*l, ",")
}

func (l *fileList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// parseConfig reads flags from args. Settings not given on the command line
// fall back to environment variables.
func parseConfig(args []string, errout io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("wordtree", flag.ContinueOnError)
	fs.SetOutput(errout)
	fs.Usage = func() {
		fmt.Fprintln(errout, "usage: wordtree [flags] <command> [args]")
		fmt.Fprintln(errout, "commands: search, range, insert, delete, import, dump, dot, outline, check, shell")
		fs.PrintDefaults()
	}
	var batches fileList
	fs.StringVar(&cfg.Backend, "backend", envStr("WORDTREE_BACKEND", "rb"), "index backend (rb=red-black tree, b=B-tree)")
	fs.IntVar(&cfg.Degree, "degree", envInt("WORDTREE_DEGREE", 10), "minimum degree of the B-tree")
	fs.StringVar(&cfg.Init, "init", "", "initialize the index from an INSERT batch file")
	fs.Var(&batches, "batch", "apply a batch file (repeatable)")
	fs.StringVar(&cfg.Color, "color", envStr("WORDTREE_COLOR", "auto"), "colored output (auto, always, never)")
	fs.StringVar(&cfg.Trace, "trace", envStr("WORDTREE_TRACE", "error"), "trace level (debug, info, error)")
	fs.BoolVar(&cfg.Timing, "timing", envBool("WORDTREE_TIMING", false), "print timing of batch operations")
	fs.StringVar(&cfg.HTML, "html", "", "write range results to an HTML file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Batches = batches
	cfg.Args = fs.Args()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Backend {
	case "rb", "b":
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", cfg.Color)
	}
	switch strings.ToLower(cfg.Trace) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace level %q", cfg.Trace)
	}
	return nil
}

// setTraceLevel sets the level of tracer from its name.
func setTraceLevel(tracer tracing.Trace, level string) bool {
	switch strings.ToLower(level) {
	case "debug":
		tracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer.SetTraceLevel(tracing.LevelInfo)
	case "error":
		tracer.SetTraceLevel(tracing.LevelError)
	default:
		return false
	}
	return true
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
