package cardboard

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Affine matrices are stored as [a, b, c, d, tx, ty] and map
// (x, y) to (a*x + c*y + tx, b*x + d*y + ty).

// multiplyAffine returns p * c (c applied first).
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or identity when m is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// objectTransform returns the matrix that maps the unit square onto the
// object's footprint of size (w, h) scaled by s around its center.
func objectTransform(o *Object, w, h, s float64) [6]float64 {
	sw, sh := w*s, h*s
	return [6]float64{sw, 0, 0, sh, o.X - sw*0.5, o.Y - sh*0.5}
}
