package topsis

import "math"

// The pipeline stages below are pure functions over immutable inputs: each
// stage allocates its result instead of mutating its argument, so partial
// results can be inspected and tested in isolation.
//
// None of the stages validate their input. Degenerate data that slipped past
// validation, such as an all-zero criterion column, produces NaN or Inf
// values that propagate silently into the output.

// Normalize divides every column by its Euclidean norm, so that each
// criterion column of the result has unit L2 length.
func Normalize(matrix [][]float64) [][]float64 {
	if len(matrix) == 0 {
		return nil
	}

	cols := len(matrix[0])
	norms := make([]float64, cols)
	for _, row := range matrix {
		for j, v := range row {
			norms[j] += v * v
		}
	}
	for j := range norms {
		norms[j] = math.Sqrt(norms[j])
	}

	normed := make([][]float64, len(matrix))
	for i, row := range matrix {
		normed[i] = make([]float64, cols)
		for j, v := range row {
			normed[i][j] = v / norms[j]
		}
	}
	return normed
}

// ApplyWeights scales each column of the matrix by its corresponding weight.
func ApplyWeights(matrix [][]float64, weights []float64) [][]float64 {
	weighted := make([][]float64, len(matrix))
	for i, row := range matrix {
		weighted[i] = make([]float64, len(row))
		for j, v := range row {
			weighted[i][j] = v * weights[j]
		}
	}
	return weighted
}

// IdealSolutions computes the positive and negative ideal solution vectors
// from the weighted matrix. For a benefit column the positive ideal is the
// column maximum and the negative ideal the minimum; for a cost column the
// extremes swap.
func IdealSolutions(weighted [][]float64, impacts []Impact) (pis, nis []float64) {
	if len(weighted) == 0 {
		return nil, nil
	}

	cols := len(weighted[0])
	pis = make([]float64, cols)
	nis = make([]float64, cols)

	for j := 0; j < cols; j++ {
		max, min := weighted[0][j], weighted[0][j]
		for _, row := range weighted[1:] {
			if row[j] > max {
				max = row[j]
			}
			if row[j] < min {
				min = row[j]
			}
		}
		if impacts[j] == Cost {
			pis[j], nis[j] = min, max
		} else {
			pis[j], nis[j] = max, min
		}
	}
	return pis, nis
}

// Separations computes, for every row of the weighted matrix, the Euclidean
// distance to the positive ideal solution and to the negative ideal solution.
func Separations(weighted [][]float64, pis, nis []float64) (distP, distN []float64) {
	distP = make([]float64, len(weighted))
	distN = make([]float64, len(weighted))

	for i, row := range weighted {
		var sumP, sumN float64
		for j, v := range row {
			dp := v - pis[j]
			dn := v - nis[j]
			sumP += dp * dp
			sumN += dn * dn
		}
		distP[i] = math.Sqrt(sumP)
		distN[i] = math.Sqrt(sumN)
	}
	return distP, distN
}

// Scores computes the relative closeness to the ideal solution for every row:
// distN / (distP + distN). Scores lie in [0,1] with 1 meaning the row
// coincides with the positive ideal.
func Scores(distP, distN []float64) []float64 {
	scores := make([]float64, len(distP))
	for i := range scores {
		scores[i] = distN[i] / (distP[i] + distN[i])
	}
	return scores
}
