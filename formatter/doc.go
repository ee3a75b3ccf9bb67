/*
Package formatter outputs the contents and the structure of word indexes.

Entries are listed in two columns, the word and its translation. Translations
frequently use scripts other than Latin, and CJK characters occupy two
positions on a fixed-width terminal, so columns are aligned by display width
(UAX#11) rather than by byte or rune count. Long translations are wrapped at
line-break opportunities (UAX#14).

Besides console listings, the package produces colored diagnostic dumps of both
tree kinds, Graphviz DOT graphs, and HTML definition lists, which may be
re-imported as insert batches.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
