package avltree

import (
	"fmt"
	"strings"
)

// String returns a tree-shaped text representation, useful for
// debugging small trees. Each line shows a node's key, height, and
// subtree count.
func (t *Tree[K, V, S]) String() string {
	if t.Empty() {
		return "AVLTree[]"
	}

	var sb strings.Builder
	sb.WriteString("AVLTree\n")
	t.output(t.root, "", true, &sb)
	return sb.String()
}

func (t *Tree[K, V, S]) output(n *node[K, V, S], prefix string, isTail bool, sb *strings.Builder) {
	if n.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		t.output(n.right, newPrefix, false, sb)
	}

	sb.WriteString(prefix)
	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}
	fmt.Fprintf(sb, "%v (h=%d, n=%d)\n", n.key, n.height, n.count)

	if n.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		t.output(n.left, newPrefix, true, sb)
	}
}
