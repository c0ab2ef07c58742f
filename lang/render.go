package lang

import (
	"fmt"
	"io"
	"strings"
)

// label renders a node's operation for display.
func (n *Node) label() string {
	if n.Op == nil {
		return "None"
	}

	label := n.Op.Type.String()
	if n.Op.Value != "" {
		label += fmt.Sprintf(": '%s'", n.Op.Value)
	}

	return label
}

// WriteASCII writes an indented text rendering of the tree to w.
//
// Each node prints its operation kind (and identifier, when present)
// prefixed by box-drawing guides; the synthetic root prints as "None".
func (n *Node) WriteASCII(w io.Writer) error {
	return n.writeASCII(w, "", "")
}

func (n *Node) writeASCII(w io.Writer, off, pointer string) error {
	_, err := fmt.Fprintf(w, "%s%s%s\n", off, pointer, n.label())
	if err != nil {
		return err
	}

	off += "|  "

	if n.Left != nil {
		if err := n.Left.writeASCII(w, off, "|- "); err != nil {
			return err
		}
	}

	if n.Right != nil {
		if err := n.Right.writeASCII(w, off, "|- "); err != nil {
			return err
		}
	}

	return nil
}

// ASCII returns the indented text rendering as a string.
func (n *Node) ASCII() string {
	var b strings.Builder

	_ = n.WriteASCII(&b)

	return b.String()
}

// DOT returns a Graphviz graph-description rendering of the tree.
// Node ids are assigned in preorder; labels are the operation kind,
// suffixed with "__<identifier>" when present, or "root" for the
// synthetic root. The renderer emits text only and never invokes any
// visualization tooling.
func (n *Node) DOT() string {
	var b strings.Builder

	b.WriteString("graph {\n")

	next := 0
	n.dot(&b, &next)

	b.WriteString("}\n")

	return b.String()
}

func (n *Node) dot(b *strings.Builder, next *int) {
	id := *next
	*next++

	label := "root"
	if n.Op != nil {
		label = n.Op.Type.String()
		if n.Op.Value != "" {
			label += "__" + n.Op.Value
		}
	}

	fmt.Fprintf(b, "  n%d [label=%q];\n", id, label)

	if n.Left != nil {
		fmt.Fprintf(b, "  n%d -- n%d;\n", id, *next)
		n.Left.dot(b, next)
	}

	if n.Right != nil {
		fmt.Fprintf(b, "  n%d -- n%d;\n", id, *next)
		n.Right.dot(b, next)
	}
}
