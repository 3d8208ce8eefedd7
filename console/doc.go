/*
Package console prints the structure of an R*-tree to a terminal.

Every node of a tree is printed on a line of its own, indented by its depth.
Branches and leaves are printed in different colors, unless colors are
switched off. Lines are cut to the configured line width, which is measured
in display cells: labels may contain wide East-Asian characters, emojis or
combining sequences, so the width of a line is computed from its grapheme
clusters following UAX #11.

	tree, _ := rstar.New(rstar.Config[string]{})
	...
	console.Print(tree, nil)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rstar'
func tracer() tracing.Trace {
	return tracing.Select("rstar")
}
