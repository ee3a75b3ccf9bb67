package formatter

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used whenever output does not go to a terminal.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // target line length in fixed-width positions, 0 for no wrapping
	Color     bool           // use terminal colors
	Context   *uax11.Context // context for display width; nil is uax11.LatinContext
}

func (config *Config) context() *uax11.Context {
	if config == nil || config.Context == nil {
		return uax11.LatinContext
	}
	return config.Context
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on for
// terminals only. Config.Context is created from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	setupGraphemes()
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var graphemesOnce sync.Once

// setupGraphemes initializes the grapheme classes needed for width measurement.
func setupGraphemes() {
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
}

// palette holds the colors used for console output.
type palette struct {
	key, red, black, plain *color.Color
}

func makePalette(enabled bool) palette {
	p := palette{
		key:   color.New(color.FgBlue, color.Bold),
		red:   color.New(color.FgRed),
		black: color.New(color.Bold),
		plain: color.New(color.Reset),
	}
	for _, c := range []*color.Color{p.key, p.red, p.black, p.plain} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
