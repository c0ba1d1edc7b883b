package lattice_test

import "strconv"

// knapsack6 is a 6-dimensional integer basis used across tests and benchmarks.
var knapsack6 = [][]float64{
	{19, 2, 32, 46, 3, 33},
	{15, 42, 11, 0, 3, 24},
	{43, 15, 0, 24, 4, 16},
	{20, 44, 44, 0, 18, 15},
	{0, 48, 35, 16, 31, 31},
	{48, 33, 32, 9, 1, 29},
}

// small3 is a 3-dimensional integer basis with |det| = 3.
var small3 = [][]float64{
	{1, 1, 1},
	{-1, 0, 2},
	{3, 5, 6},
}

// formatNorm renders a norm the way the result file does.
func formatNorm(x float64) string {
	return strconv.FormatFloat(x, 'f', 15, 64)
}
