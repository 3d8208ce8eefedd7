/*
Package boxfile loads bounding boxes from text files into an R*-tree.

File format

Every line holds one record:

	minX minY maxX maxY [label ...]

Fields are separated by blanks or commas. The label is made of the remaining
fields, joined by single blanks; records without a label get "#<line>" as
their label. A '#' starts a comment which extends to the end of the line,
blank lines are ignored.

Loading runs a reading goroutine, but all insertions into the tree happen on
the caller's goroutine, as trees are not safe for concurrent use. Clients may
subscribe to progress messages while a file is loading.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package boxfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rstar'
func tracer() tracing.Trace {
	return tracing.Select("rstar")
}

// ErrMalformedLine is flagged for lines which do not hold a valid record.
var ErrMalformedLine = errors.New("boxfile: malformed line")
