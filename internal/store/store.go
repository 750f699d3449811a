// Package store persists board and theme state as two independent slots in
// the data directory, one file per slot key. The board slot holds the JSON
// 5×5 cell grid; the theme slot holds the bare literal "light" or "dark".
//
// Reads distinguish a missing slot from a malformed one via a typed decode
// outcome, so callers map each case to an explicit branch instead of hiding
// the fallback inside a catch-all. Writes are plain whole-file replacement;
// there is no locking, which is fine for a local single-user application.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"eventbingo/internal/board"
)

// Slot keys. These are the fixed names of the two persisted values and are
// part of the on-disk contract.
const (
	BoardKey = "bingo-board-state"
	ThemeKey = "bingo-theme"
)

// DecodeResult classifies the outcome of reading a persisted slot.
type DecodeResult int

const (
	// DecodeOK means the slot existed and parsed cleanly.
	DecodeOK DecodeResult = iota
	// DecodeMissing means no value has ever been persisted.
	DecodeMissing
	// DecodeInvalid means the slot existed but could not be parsed.
	DecodeInvalid
)

// Slots is a handle to the data directory holding the persisted values.
type Slots struct {
	dir string
}

// Open prepares the data directory and returns a slot handle.
func Open(dir string) (*Slots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Slots{dir: dir}, nil
}

// Dir returns the data directory backing the slots.
func (s *Slots) Dir() string {
	return s.dir
}

// LoadBoard reads and decodes the board slot.
func (s *Slots) LoadBoard() (board.Grid, DecodeResult) {
	var g board.Grid

	bytes, err := os.ReadFile(s.path(BoardKey))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return g, DecodeMissing
		}
		return g, DecodeInvalid
	}

	var rows [][]board.Cell
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return g, DecodeInvalid
	}
	if len(rows) != board.Size {
		return g, DecodeInvalid
	}
	for r, row := range rows {
		if len(row) != board.Size {
			return board.Grid{}, DecodeInvalid
		}
		for c, cell := range row {
			g[r][c] = cell
		}
	}
	return g, DecodeOK
}

// SaveBoard serializes the full grid into the board slot.
func (s *Slots) SaveBoard(g board.Grid) error {
	rows := make([][]board.Cell, board.Size)
	for r := 0; r < board.Size; r++ {
		rows[r] = g[r][:]
	}
	bytes, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	if err := os.WriteFile(s.path(BoardKey), bytes, 0o644); err != nil {
		return fmt.Errorf("write board slot: %w", err)
	}
	return nil
}

// LoadTheme reads the theme slot. The returned string is the raw persisted
// literal; validation against the theme enumeration is the caller's job.
func (s *Slots) LoadTheme() (string, DecodeResult) {
	bytes, err := os.ReadFile(s.path(ThemeKey))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", DecodeMissing
		}
		return "", DecodeInvalid
	}
	return string(bytes), DecodeOK
}

// SaveTheme writes the theme literal into the theme slot.
func (s *Slots) SaveTheme(value string) error {
	if err := os.WriteFile(s.path(ThemeKey), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write theme slot: %w", err)
	}
	return nil
}

func (s *Slots) path(key string) string {
	return filepath.Join(s.dir, key)
}
