package note2clip

import "strings"

// Node is one parsed outline line plus its nested children.
//
// Depth is the indentation level of the line (count of leading tabs),
// or -1 for the synthetic root. Blank entries mark empty source lines
// so renderers can reproduce the original spacing; a blank entry has
// no text and no children.
type Node struct {
	Depth    int
	Text     string
	Blank    bool
	Children []*Node
}

// ParseOutline converts tab-indented text into a node tree.
//
// Each non-empty line becomes a node whose depth is its count of
// leading tabs. A line indented more than one level past its nearest
// open ancestor is clamped to ancestor depth + 1; intermediate levels
// are never fabricated. Blank lines become Blank marker entries in the
// current parent's child sequence.
//
// Parsing never fails: empty input yields a childless root.
func ParseOutline(text string) *Node {
	root := &Node{Depth: -1}
	if text == "" {
		return root
	}

	// Stack of open ancestors; root stays at the bottom.
	stack := []*Node{root}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimRight(line, " \t\r")

		if stripped == "" {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, &Node{Depth: top.Depth + 1, Blank: true})
			continue
		}

		depth := leadingTabs(line)
		content := strings.TrimLeft(stripped, "\t")

		// Pop closed ancestors until the top can own this line.
		for stack[len(stack)-1].Depth >= depth {
			stack = stack[:len(stack)-1]
		}

		// Repair depth skips: never more than one level past the parent.
		parent := stack[len(stack)-1]
		if depth > parent.Depth+1 {
			depth = parent.Depth + 1
		}

		node := &Node{Depth: depth, Text: content}
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return root
}

// leadingTabs counts the tab characters at the start of line.
func leadingTabs(line string) int {
	return len(line) - len(strings.TrimLeft(line, "\t"))
}

// line is a flattened outline entry in document order.
type line struct {
	depth int
	text  string
	blank bool
}

// flatten walks the tree depth-first and returns the entries in
// document order. All renderers consume this same sequence, so
// structural decisions (roles, nesting, spacing) are identical across
// them and only surface syntax differs.
func flatten(root *Node) []line {
	var out []line
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Blank {
				out = append(out, line{depth: c.Depth, blank: true})
				continue
			}
			out = append(out, line{depth: c.Depth, text: c.Text})
			walk(c)
		}
	}
	walk(root)
	return out
}

// isEmptyOutline reports whether the tree holds no content lines.
func isEmptyOutline(root *Node) bool {
	for _, l := range flatten(root) {
		if !l.blank {
			return false
		}
	}
	return true
}
