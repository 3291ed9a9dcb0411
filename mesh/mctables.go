package mesh

// cubeCornerOffset gives the (x,y,z) unit-cube offset of each of a cell's 8
// corners; tetraDecomposition (polygonised.go) indexes into this ordering
// when splitting a cell into six tetrahedra.
var cubeCornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}
