package board

// IsBingo reports whether any complete line is fully checked: the 5 rows,
// the 5 columns, the main diagonal (0,0)..(4,4), then the anti-diagonal
// (0,4)..(4,0). Pure; callers recompute from the current grid rather than
// caching the result.
func IsBingo(g Grid) bool {
	for row := 0; row < Size; row++ {
		if rowChecked(g, row) {
			return true
		}
	}
	for col := 0; col < Size; col++ {
		if colChecked(g, col) {
			return true
		}
	}
	return diagonalChecked(g) || antiDiagonalChecked(g)
}

func rowChecked(g Grid, row int) bool {
	for col := 0; col < Size; col++ {
		if !g[row][col].Checked {
			return false
		}
	}
	return true
}

func colChecked(g Grid, col int) bool {
	for row := 0; row < Size; row++ {
		if !g[row][col].Checked {
			return false
		}
	}
	return true
}

func diagonalChecked(g Grid) bool {
	for i := 0; i < Size; i++ {
		if !g[i][i].Checked {
			return false
		}
	}
	return true
}

func antiDiagonalChecked(g Grid) bool {
	for i := 0; i < Size; i++ {
		if !g[i][Size-1-i].Checked {
			return false
		}
	}
	return true
}
