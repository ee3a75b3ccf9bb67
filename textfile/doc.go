/*
Package textfile loads batch files for a word index.

Files are mapped into memory read-only and parsed directly from the mapping,
without copying them into a buffer first. A batch file is UTF-8 text; its first
line names the mode (INSERT or DELETE), every further line holds one operation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
