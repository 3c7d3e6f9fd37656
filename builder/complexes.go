// Package builder: the canonical datasets and their constructors.
//
// Triangle lists are stored pre-sorted — within each triangle and
// lexicographically across triangles — so insertion order, tree dumps
// and derived matrices are reproducible bit-for-bit.
package builder

import (
	"fmt"

	"github.com/kc-howe/betti/simplex"
)

// cylinderTriangles triangulate a tube on six vertices.
var cylinderTriangles = [][]int{
	{0, 1, 4},
	{0, 2, 3},
	{0, 3, 4},
	{1, 2, 5},
	{1, 4, 5},
	{2, 3, 5},
}

// mobiusTriangles triangulate the one-sided band on six vertices.
var mobiusTriangles = [][]int{
	{0, 1, 4},
	{0, 2, 3},
	{0, 2, 5},
	{0, 3, 4},
	{1, 2, 5},
	{1, 4, 5},
}

// torusTriangles is the minimal 9-vertex, 18-triangle torus.
var torusTriangles = [][]int{
	{0, 1, 3},
	{0, 1, 7},
	{0, 2, 5},
	{0, 2, 6},
	{0, 3, 5},
	{0, 6, 7},
	{1, 2, 4},
	{1, 2, 8},
	{1, 3, 4},
	{1, 7, 8},
	{2, 4, 5},
	{2, 6, 8},
	{3, 4, 6},
	{3, 5, 8},
	{3, 6, 8},
	{4, 5, 7},
	{4, 6, 7},
	{5, 7, 8},
}

// kleinTriangles is the minimal 9-vertex, 18-triangle Klein bottle.
var kleinTriangles = [][]int{
	{0, 1, 3},
	{0, 1, 7},
	{0, 2, 3},
	{0, 2, 5},
	{0, 5, 6},
	{0, 6, 7},
	{1, 2, 4},
	{1, 2, 8},
	{1, 3, 4},
	{1, 7, 8},
	{2, 3, 8},
	{2, 4, 5},
	{3, 4, 6},
	{3, 6, 8},
	{4, 5, 7},
	{4, 6, 7},
	{5, 6, 8},
	{5, 7, 8},
}

// fromTriangles inserts a triangle list with closures into a fresh tree.
func fromTriangles(name string, triangles [][]int) (*simplex.Tree[int], error) {
	t := simplex.NewTree[int]()
	if err := t.InsertClosedAll(triangles); err != nil {
		return nil, fmt.Errorf("builder.%s: %w", name, err)
	}

	return t, nil
}

// Ball builds the solid tetrahedron on vertices 0–3: the closure of a
// single 3-simplex. β = [1,0,0,0].
func Ball() (*simplex.Tree[int], error) {
	t := simplex.NewTree[int]()
	if err := t.InsertClosed([]int{0, 1, 2, 3}); err != nil {
		return nil, fmt.Errorf("builder.Ball: %w", err)
	}

	return t, nil
}

// Sphere builds the hollow tetrahedron: the ball with its top cell
// removed. β = [1,0,1].
func Sphere() (*simplex.Tree[int], error) {
	t, err := Ball()
	if err != nil {
		return nil, err
	}
	if err = t.Remove([]int{0, 1, 2, 3}); err != nil {
		return nil, fmt.Errorf("builder.Sphere: %w", err)
	}

	return t, nil
}

// Cylinder builds the six-triangle tube. β = [1,1,0].
func Cylinder() (*simplex.Tree[int], error) {
	return fromTriangles("Cylinder", cylinderTriangles)
}

// MobiusStrip builds the six-triangle Möbius band. β = [1,1,0].
func MobiusStrip() (*simplex.Tree[int], error) {
	return fromTriangles("MobiusStrip", mobiusTriangles)
}

// Torus builds the minimal 9-vertex torus triangulation. β = [1,2,1].
func Torus() (*simplex.Tree[int], error) {
	return fromTriangles("Torus", torusTriangles)
}

// KleinBottle builds the minimal 9-vertex Klein bottle triangulation.
// Over Z/2 its Betti numbers coincide with the torus: β = [1,2,1].
func KleinBottle() (*simplex.Tree[int], error) {
	return fromTriangles("KleinBottle", kleinTriangles)
}
