package board

import (
	"eventbingo/internal/catalog"
)

// Size is the board edge length. The grid is always Size × Size.
const Size = 5

// Cell is one grid position: the question it shows and whether the player
// has checked it off.
type Cell struct {
	Question string `json:"question"`
	Checked  bool   `json:"checked"`
}

// Grid is the 5×5 board, row-major. It is a plain value type; copying a
// Grid copies all cells.
type Grid [Size][Size]Cell

// Fresh builds an all-unchecked grid from the catalog, in catalog order.
func Fresh(cat catalog.Catalog) Grid {
	var g Grid
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			g[row][col] = Cell{Question: cat.At(row*Size + col).Text}
		}
	}
	return g
}

// MatchesCatalog reports whether the grid's flattened question sequence
// equals the catalog's, element-wise across all 25 positions. Checked flags
// are ignored; only question text is compared.
func MatchesCatalog(g Grid, cat catalog.Catalog) bool {
	if cat.Len() != Size*Size {
		return false
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g[row][col].Question != cat.At(row*Size+col).Text {
				return false
			}
		}
	}
	return true
}

// Toggle returns a copy of the grid with the checked flag at (row, col)
// flipped and every other cell unchanged. Coordinates outside 0..4 are a
// programming error and panic via the array bounds check.
func Toggle(g Grid, row, col int) Grid {
	g[row][col].Checked = !g[row][col].Checked
	return g
}
