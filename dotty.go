package rstar

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	var path []int // ids of the ancestors of the current node, by depth
	id := 0
	tree.Traverse(func(info NodeInfo[T]) bool {
		id++
		path = append(path[:info.Depth], id)
		if info.Depth > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", path[info.Depth-1], id)
		}
		styles := nodeDotStyles(info.IsLeaf)
		if info.IsLeaf {
			label := escapeDot(fmt.Sprint(info.Item)) + "\\n" + info.Box.String()
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, styles)
		} else {
			nodelist += fmt.Sprintf("\"%d\" [label=%d %s];\n", id, info.Children, styles)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func escapeDot(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
