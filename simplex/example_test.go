package simplex_test

import (
	"fmt"

	"github.com/kc-howe/betti/simplex"
)

// ExampleTree_InsertClosed builds a solid triangle and enumerates its
// simplices dimension by dimension.
func ExampleTree_InsertClosed() {
	tr := simplex.NewTree[int]()
	if err := tr.InsertClosed([]int{0, 1, 2}); err != nil {
		fmt.Println("error:", err)

		return
	}

	for k := 0; k <= tr.Dimension(); k++ {
		for _, n := range tr.KSimplices(k) {
			fmt.Println(n.VertexList())
		}
	}
	// Output:
	// [0]
	// [1]
	// [2]
	// [0 1]
	// [0 2]
	// [1 2]
	// [0 1 2]
}

// ExampleTree_Cofaces locates every simplex containing a given edge.
func ExampleTree_Cofaces() {
	tr := simplex.NewTree[int]()
	_ = tr.InsertClosedAll([][]int{
		{0, 1, 4},
		{0, 2, 3},
		{0, 3, 4},
	})

	cofaces, err := tr.Cofaces([]int{0, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, n := range cofaces {
		fmt.Println(n)
	}
	// Output:
	// Simplex(0,1,4)
	// Simplex(0,3,4)
}

// ExampleTree_Remove hollows out a tetrahedron, leaving the 2-sphere.
func ExampleTree_Remove() {
	tr := simplex.NewTree[int]()
	_ = tr.InsertClosed([]int{1, 2, 3, 4})
	_ = tr.Remove([]int{1, 2, 3, 4})

	fmt.Println("dimension:", tr.Dimension())
	fmt.Println("triangles:", len(tr.KSimplices(2)))
	// Output:
	// dimension: 2
	// triangles: 4
}
