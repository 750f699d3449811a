package state

import (
	"sync"

	"go.uber.org/zap"

	"eventbingo/internal/board"
	"eventbingo/internal/catalog"
	"eventbingo/internal/store"
)

// BoardStore owns the board grid. It is the only writer; consumers read
// copies via Grid. Every successful mutation persists the full grid to the
// board slot, fire-and-forget.
type BoardStore struct {
	mu     sync.RWMutex
	grid   board.Grid
	slots  *store.Slots
	logger *zap.Logger
}

// NewBoardStore loads the persisted board and reconciles it against the
// catalog: a well-formed persisted grid whose question sequence matches the
// catalog exactly is adopted verbatim, checked flags included. A missing,
// malformed, or mismatched grid is discarded and replaced with a fresh
// all-unchecked grid in catalog order. The reset path persists immediately
// so the slot never keeps a layout the catalog has moved away from.
func NewBoardStore(slots *store.Slots, cat catalog.Catalog, logger *zap.Logger) *BoardStore {
	s := &BoardStore{slots: slots, logger: logger}

	persisted, result := slots.LoadBoard()
	switch result {
	case store.DecodeOK:
		if board.MatchesCatalog(persisted, cat) {
			s.grid = persisted
			logger.Debug("adopted persisted board")
			return s
		}
		logger.Debug("persisted board does not match catalog, resetting")
	case store.DecodeMissing:
		logger.Debug("no persisted board, starting fresh")
	case store.DecodeInvalid:
		logger.Debug("persisted board unreadable, resetting")
	}

	s.grid = board.Fresh(cat)
	s.persist()
	return s
}

// Toggle flips the checked flag at (row, col) and persists the board.
// Coordinates outside the grid are a programming error; the interaction
// layer guarantees validity.
func (s *BoardStore) Toggle(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = board.Toggle(s.grid, row, col)
	s.persist()
}

// Grid returns a copy of the current grid.
func (s *BoardStore) Grid() board.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Bingo recomputes win state from the current grid. Never cached.
func (s *BoardStore) Bingo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return board.IsBingo(s.grid)
}

// persist writes the grid to the board slot. Failures are absorbed: there
// is no retry and nothing is surfaced to the user, only a debug log entry.
// Callers must hold the lock or be the constructor.
func (s *BoardStore) persist() {
	if err := s.slots.SaveBoard(s.grid); err != nil {
		s.logger.Debug("board persist failed", zap.Error(err))
	}
}
