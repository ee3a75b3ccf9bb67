package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/wordtree"
)

// ErrIllegalArguments is flagged whenever function parameters are invalid.
var ErrIllegalArguments = errors.New("formatter: illegal arguments")

// columnGap separates the word column from the translation column.
const columnGap = 2

// Listing writes entries as two columns, the word and its translation. The word
// column is padded to the display width of the widest word. Translations
// exceeding config.LineWidth are wrapped onto continuation lines, indented to the
// translation column.
//
// config may be nil, which selects a plain, unwrapped listing.
func Listing(w io.Writer, entries []wordtree.Entry, config *Config) error {
	if w == nil {
		return ErrIllegalArguments
	}
	if config == nil {
		config = &Config{}
	}
	ctx := config.context()
	colors := makePalette(config.Color)
	keywidth := 0
	for _, e := range entries {
		keywidth = max(keywidth, Width(e.Key, ctx))
	}
	valuewidth := 0
	if config.LineWidth > 0 {
		valuewidth = max(config.LineWidth-keywidth-columnGap, 1)
	}
	indent := strings.Repeat(" ", keywidth+columnGap)
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		colors.key.Fprint(bw, e.Key)
		bw.WriteString(strings.Repeat(" ", keywidth-Width(e.Key, ctx)+columnGap))
		for i, line := range wrap(e.Value, valuewidth, ctx) {
			if i > 0 {
				bw.WriteString(indent)
			}
			colors.plain.Fprint(bw, line)
			bw.WriteByte('\n')
		}
	}
	T().Debugf("listed %d entries, word column is %d wide", len(entries), keywidth)
	return bw.Flush()
}

// Results writes one line per failed batch result, followed by a summary line.
func Results(w io.Writer, results []wordtree.Result, config *Config) error {
	if w == nil {
		return ErrIllegalArguments
	}
	colors := makePalette(config != nil && config.Color)
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.OK() {
			continue
		}
		if r.Op.Line > 0 {
			fmt.Fprintf(bw, "line %d: ", r.Op.Line)
		}
		colors.red.Fprint(bw, r.Err.Error())
		bw.WriteByte('\n')
	}
	failed := wordtree.CountFailures(results)
	fmt.Fprintf(bw, "%d operations, %d succeeded, %d failed\n", len(results), len(results)-failed, failed)
	return bw.Flush()
}
