// Package state provides the two owned, persistent state containers of the
// application: the board store and the theme store.
//
// # Overview
//
// Each store is the exclusive writer for its value. Consumers hold a
// reference to the store and go through its narrow mutation API (Toggle);
// there is no ambient or global state. Every successful mutation triggers a
// full re-serialization to the store's durable slot before the call
// returns.
//
// # Architecture
//
//	┌──────────────┐   Toggle(row,col)  ┌──────────────┐
//	│  UI (events)  │ ─────────────────→ │  BoardStore  │──→ slot bingo-board-state
//	│               │   Toggle()         ├──────────────┤
//	│               │ ─────────────────→ │  ThemeStore  │──→ slot bingo-theme
//	└──────────────┘                    └──────────────┘
//
// The two stores are independent: they persist to separate slots and are
// never mutated together atomically. Losing one write but not the other
// across a crash is an accepted risk at these stakes.
//
// # Reconciliation
//
// NewBoardStore decides at startup whether persisted checked-state can be
// trusted. The persisted grid is adopted only when its flattened question
// sequence equals the current catalog's, element-wise across all 25
// positions. Anything else — missing slot, unparsable payload, any textual
// mismatch including pure reordering — discards the persisted grid for a
// fresh all-unchecked one. A checked flag must never end up paired with a
// question it was not checked against; silent corruption is worse than a
// full reset.
//
// # Persistence Failures
//
// Slot writes are fire-and-forget: no retry, no user-visible error, just a
// debug log entry. A failed write means the next session may reconstruct
// from stale or missing state, which reconciliation already handles.
//
// # Concurrency
//
// All mutation arrives serialized through the UI event loop, so the mutex
// in each store is belt-and-suspenders rather than load-bearing. It keeps
// the containers safe to read from tests and any future background work
// without changing their contract.
package state
