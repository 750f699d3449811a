// Package config handles loading and parsing the application's own
// configuration file.
//
// # Overview
//
// The config file points at everything else: the data directory that
// holds the persisted board and theme slots, the optional catalog override
// file, and the optional debug log. All of it has sensible defaults; the
// application works out of the box with no config file at all.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (the -config flag), use it.
//  2. Otherwise, use ~/.config/eventbingo/config.toml.
//  3. If the file doesn't exist, fall back to the defaults below.
//  4. If the file exists but fields are missing or blank, use defaults
//     for those fields.
//
// # Default Values
//
//   - Config file: ~/.config/eventbingo/config.toml
//   - Data dir: ~/.local/share/eventbingo
//   - Catalog override: ~/.config/eventbingo/catalog.toml
//   - Debug log: disabled (empty)
//
// # TOML Format
//
//	data_dir = "~/.local/share/eventbingo"
//	catalog = "~/.config/eventbingo/catalog.toml"
//	debug_log = "~/.cache/eventbingo/debug.log"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. A missing config file is NOT an error.
package config
