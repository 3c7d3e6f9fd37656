// Package simplex: deterministic textual dump of the tree for golden
// tests and debugging.
package simplex

import (
	"fmt"
	"strings"
)

// Dump renders the tree as a nested mapping from label to child dump,
// children in label order, e.g. "{0:{1:{2:{}},2:{}},1:{2:{}},2:{}}"
// for the full triangle on {0,1,2}. Equal complexes dump equally.
func (t *Tree[V]) Dump() string {
	var b strings.Builder
	t.dumpNode(&b, t.root)

	return b.String()
}

func (t *Tree[V]) dumpNode(b *strings.Builder, n *Node[V]) {
	b.WriteByte('{')
	for i, k := range n.children.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(b, k)
		b.WriteByte(':')
		child, _ := n.children.Get(k)
		t.dumpNode(b, child)
	}
	b.WriteByte('}')
}
