package isogeny

// Traverse walks the isogeny tree rooted at the kernel generator xR
// according to strategy, starting on the curve with coefficients c.
//
// A strategy for n isogeny steps holds n-1 entries. Every entry tells how
// many times to descend before the next point is pushed; once a leaf (a
// point of the isogeny's degree) is reached, the isogeny is built from it,
// applied to every stacked point and to aux, and the walk resumes from the
// last stacked point. The aux points are updated in place and the codomain
// of the last step is returned.
func Traverse(phi Isogeny, c Coefficients, xR Point, strategy []uint32, aux []Point) Coefficients {
	var points = make([]Point, 0, 8)
	var indices = make([]int, 0, 8)
	var i, sidx int

	stratSz := len(strategy)
	for j := 1; j <= stratSz; j++ {
		for i <= stratSz-j {
			points = append(points, xR)
			indices = append(indices, i)

			k := strategy[sidx]
			sidx++
			phi.Descend(&xR, &c, k)
			i += int(k)
		}

		c = phi.GenerateCurve(&xR)
		for k := range points {
			points[k] = phi.EvaluatePoint(&points[k])
		}
		for k := range aux {
			aux[k] = phi.EvaluatePoint(&aux[k])
		}

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	c = phi.GenerateCurve(&xR)
	for k := range aux {
		aux[k] = phi.EvaluatePoint(&aux[k])
	}
	return c
}
