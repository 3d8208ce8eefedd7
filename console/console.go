package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/rstar"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth  int            // maximum display width of a line, in fixed-width cells
	Indent     int            // indentation per tree level; defaults to 2
	Context    *uax11.Context // East-Asian width context; defaults to uax11.LatinContext
	Monochrome bool           // do not colorize output
}

// NodeKind discriminates the colors used for tree nodes.
type NodeKind int8

// Kinds of nodes to print.
const (
	Branch NodeKind = iota
	Leaf
)

// DefaultPalette holds the colors for printing nodes.
var DefaultPalette = map[NodeKind]*color.Color{
	Branch: color.New(color.FgBlue),
	Leaf:   color.New(color.FgRed),
}

const ellipsis = "…"

var setupGraphemes sync.Once

// Print outputs the structure of tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](tree *rstar.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, tree, config)
}

// Fprint outputs the structure of tree to w, one line per node, parents
// before their children.
//
// It is safe to have config set to nil or config.Context set to nil.
// Fprint returns the first error from writing to w.
func Fprint[T any](w io.Writer, tree *rstar.Tree[T], config *Config) error {
	if tree == nil {
		return fmt.Errorf("%w: tree is nil", rstar.ErrInvalidArgument)
	}
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer{w: w, config: config, indent: config.Indent}
	if p.indent <= 0 {
		p.indent = 2
	}
	if p.config.Context == nil {
		p.context = uax11.LatinContext
	} else {
		p.context = p.config.Context
	}
	if tree.IsEmpty() {
		p.line(Branch, "∅")
		return p.err
	}
	tree.Traverse(func(n rstar.NodeInfo[T]) bool {
		var text string
		kind := Branch
		if n.IsLeaf {
			kind = Leaf
			text = fmt.Sprintf("%s %v", n.Box, n.Item)
		} else {
			text = fmt.Sprintf("%s (%d)", n.Box, n.Children)
		}
		p.line(kind, strings.Repeat(" ", n.Depth*p.indent)+text)
		return p.err == nil
	})
	return p.err
}

type printer struct {
	w       io.Writer
	config  *Config
	context *uax11.Context
	indent  int
	err     error
}

func (p *printer) line(kind NodeKind, s string) {
	if p.err != nil {
		return
	}
	if p.config.LineWidth > 0 {
		s = truncate(s, p.config.LineWidth, p.context)
	}
	if c, ok := DefaultPalette[kind]; ok && !p.config.Monochrome {
		_, p.err = c.Fprint(p.w, s)
	} else {
		_, p.err = io.WriteString(p.w, s)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
}

// displayWidth is the width of s in fixed-width cells.
func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(graphemes(s), context)
}

// graphemes splits s into grapheme clusters. Grapheme strings are limited in
// size, but anything beyond that limit would not fit on a line anyway.
func graphemes(s string) grapheme.String {
	if len(s) >= grapheme.MaxByteLen {
		s = s[:grapheme.MaxByteLen-1]
	}
	return grapheme.StringFromString(s)
}

// truncate cuts s to at most width cells, never splitting a grapheme
// cluster. Truncated strings end with an ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	gstr := graphemes(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	avail := width - displayWidth(ellipsis, context)
	var sb strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.Width([]byte(g), context)
		if w+gw > avail {
			break
		}
		w += gw
		sb.WriteString(g)
	}
	if sb.Len() == 0 {
		return ""
	}
	return sb.String() + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context will be
// created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65, Monochrome: true}
	if term.IsTerminal(0) {
		config.Monochrome = false
		if w, _, err := term.GetSize(0); err == nil {
			config.LineWidth = lineWidthFor(w)
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("console: setting line length to %d en", config.LineWidth)
	return config
}

// lineWidthFor leaves a right margin on terminals of width w, shrinking with
// the terminal.
func lineWidthFor(w int) int {
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
