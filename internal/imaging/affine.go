package imaging

// Matrix is a 3x3 affine transformation matrix in row-major order.
type Matrix [9]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx 0  0
//  0  sy 0
//  0  0  1
//
func Scaling(sx, sy float64) Matrix {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// FlipY maps a coordinate system with the origin at the top-left corner
// to one with the origin at the bottom-left corner (and back),
// for a page of the given height.
func FlipY(height float64) Matrix {
	return Multiply(Translation(0, height), Scaling(1, -1))
}

// Multiply combines two affine transforms.
// The result applies b first, then a.
func Multiply(a, b Matrix) Matrix {
	var m Matrix

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// Transform applies the transform to the given x,y point.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}
