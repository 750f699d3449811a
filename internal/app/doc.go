// Package app provides the orchestration layer for the application.
//
// # Overview
//
// This package is the composition root: it loads configuration, builds the
// logger, loads the question catalog, opens the persistence slots, wires
// the two state stores, and hands everything to the UI. Business logic
// lives in the domain packages; app only connects them.
//
// # Startup Sequence
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        paths and defaults
//	       ├─────> newLogger()          debug file logger or nop
//	       ├─────> catalog.Load()       25 questions (override or built-in)
//	       ├─────> store.Open()         data dir with the two slots
//	       ├─────> state.NewBoardStore() reconcile persisted board
//	       ├─────> state.NewThemeStore() persisted → terminal → light
//	       └─────> ui.Run()             blocks until quit
//
// # Error Handling
//
// Fatal at startup (returned from Run): malformed config file, malformed or
// wrong-sized catalog override, data directory creation failure, logger
// setup failure. Everything after the UI starts degrades silently per the
// stores' contracts; there are no recoverable startup states.
package app
