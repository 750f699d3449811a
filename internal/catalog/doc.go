// Package catalog provides the fixed, ordered set of bingo questions.
//
// # Overview
//
// A catalog is the static input the board is built from: exactly 25
// questions, ordered, each with a stable integer id. The order defines the
// grid layout (index = row*5 + col). The catalog never changes while the
// application runs; edits happen between sessions by changing the override
// file, and the board store reconciles against the new content at startup.
//
// # Resolution Order
//
//  1. If a catalog path is configured and the file exists, parse it.
//  2. If the path is empty or the file is missing, use the built-in set.
//  3. If the file exists but is malformed or not exactly 25 questions,
//     fail at startup.
//
// The asymmetry with the persisted board (which degrades silently) is
// deliberate: the catalog is operator-provided configuration, and a broken
// override should be fixed, not papered over.
//
// # File Format
//
// The override file is TOML with a questions array:
//
//	[[questions]]
//	id = 1
//	text = "Has worked here more than 5 years"
//
//	[[questions]]
//	id = 2
//	text = "Speaks three or more languages"
//
// Exactly 25 entries are required; ids must be unique and text non-empty.
package catalog
