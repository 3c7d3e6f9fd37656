// Package simplex: Node layout and accessors.
//
// A node owns its children through a label-ordered treemap; parent and
// circular sibling links are non-owning and must be treated as
// invalidated once the referenced node is removed from its tree.
package simplex

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// Node is a single simplex in a Tree. The simplex it represents is the
// sequence of edge labels on the path from the root, available via
// VertexList.
type Node[V cmp.Ordered] struct {
	label    V                         // edge label from parent; zero value at the root
	parent   *Node[V]                  // nil at the root
	children *treemap.Map[V, *Node[V]] // label → child, iterated in label order
	depth    int                       // path length from the root; |simplex|
	link     *Node[V]                  // next node in the (depth, label) circular list; self when singleton
}

// newNode creates a node below parent with the given edge label.
// The circular link starts as a self-loop; Tree.splice wires it in.
func newNode[V cmp.Ordered](label V, parent *Node[V]) *Node[V] {
	n := &Node[V]{
		label:    label,
		parent:   parent,
		children: treemap.New[V, *Node[V]](),
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	n.link = n

	return n
}

// Label returns the node's edge label. Meaningless at the root.
func (n *Node[V]) Label() V { return n.label }

// Parent returns the parent node, or nil at the root.
func (n *Node[V]) Parent() *Node[V] { return n.parent }

// Depth returns the number of vertices of the node's simplex
// (the root has depth 0).
func (n *Node[V]) Depth() int { return n.depth }

// Dimension returns the dimension of the node's simplex, depth − 1.
// The root reports −1.
func (n *Node[V]) Dimension() int { return n.depth - 1 }

// VertexList returns the sorted vertex labels of the node's simplex by
// walking up to the root. The root yields an empty list.
// Complexity: O(depth).
func (n *Node[V]) VertexList() []V {
	vertices := make([]V, n.depth)
	for node := n; node.parent != nil; node = node.parent {
		vertices[node.depth-1] = node.label
	}

	return vertices
}

// childList returns the children in label order.
func (n *Node[V]) childList() []*Node[V] {
	keys := n.children.Keys()
	nodes := make([]*Node[V], 0, len(keys))
	for _, k := range keys {
		if child, ok := n.children.Get(k); ok {
			nodes = append(nodes, child)
		}
	}

	return nodes
}

// String renders the node as its vertex list, e.g. "Simplex(0,2,5)".
func (n *Node[V]) String() string {
	parts := make([]string, 0, n.depth)
	for _, v := range n.VertexList() {
		parts = append(parts, fmt.Sprint(v))
	}

	return "Simplex(" + strings.Join(parts, ",") + ")"
}
