package formatter

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Width returns the display width of s in fixed-width positions.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes()
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

/*
Wikipedia:
	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/

// wrap breaks s into lines of at most linewidth positions, first-fit, at UAX#14
// line-break opportunities. A fragment too long for a line gets a line of its
// own. Trailing spaces are dropped from every line.
func wrap(s string, linewidth int, context *uax11.Context) []string {
	if linewidth <= 0 || Width(s, context) <= linewidth {
		return []string{s}
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(strings.NewReader(s))
	var lines []string
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := Width(strings.TrimRight(frag, " "), context)
		if fraglen > spaceleft && line.Len() > 0 { // fragment overshoots line
			lines = append(lines, strings.TrimRight(line.String(), " "))
			T().Debugf("break before %q", frag)
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= Width(frag, context)
	}
	if line.Len() > 0 { // we have a partial line to consume
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
