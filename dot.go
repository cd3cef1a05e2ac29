package addrtree

import (
	"fmt"
	"io"
	"strings"
)

// DOTOptions configures WriteDOT output.
type DOTOptions struct {
	Name        string // Graph name (default "addrtree")
	ShowGeohash bool   // Annotate nodes that have a centroid with its geohash
}

// WriteDOT renders the finished hierarchy as a Graphviz digraph, one
// declaration per node and one edge per parent/child link, in
// breadth-first order. It reads the tree through the same traversal
// interface available to any consumer and performs no mutation.
func WriteDOT(w io.Writer, h *Hierarchy, opts DOTOptions) error {
	name := opts.Name
	if name == "" {
		name = "addrtree"
	}
	if _, err := fmt.Fprintf(w, "digraph %q {\n", name); err != nil {
		return fmt.Errorf("writing DOT header: %w", err)
	}
	if _, err := io.WriteString(w, "\trankdir=TB;\n\tnode [shape=box];\n"); err != nil {
		return fmt.Errorf("writing DOT header: %w", err)
	}

	// Labels are unique among siblings but not across the tree, so nodes
	// get sequential ids in visit order.
	ids := make(map[*Node]int)
	var werr error
	h.Root().Walk(func(n *Node) {
		if werr != nil {
			return
		}
		id := len(ids)
		ids[n] = id
		label := fmt.Sprintf("%s\\n(%s)", escapeDOT(n.Label), n.Level)
		if opts.ShowGeohash {
			if gh := n.Geohash(); gh != "" {
				label += fmt.Sprintf("\\n%s", gh)
			}
		}
		_, werr = fmt.Fprintf(w, "\tn%d [label=\"%s\"];\n", id, label)
	})
	if werr != nil {
		return fmt.Errorf("writing DOT nodes: %w", werr)
	}

	for _, e := range h.Root().Edges() {
		if _, err := fmt.Fprintf(w, "\tn%d -> n%d;\n", ids[e.Parent], ids[e.Child]); err != nil {
			return fmt.Errorf("writing DOT edges: %w", err)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("writing DOT footer: %w", err)
	}
	return nil
}

// escapeDOT escapes characters that would terminate a double-quoted DOT
// string.
func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
