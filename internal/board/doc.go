// Package board holds the pure grid logic: the 5×5 cell grid, the win
// detector, and the search filter.
//
// Everything here is a pure function over plain value types. Grid is a
// fixed-size array, so assignment copies the whole board and the functions
// can take and return grids by value without aliasing surprises. Ownership,
// persistence, and reconciliation live in internal/state and internal/store;
// this package knows nothing about where grids come from or go.
package board
