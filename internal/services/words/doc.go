// Package words selects candidate words for new games and records custom
// ones supplied during multiplayer setup.
//
// It layers game-facing behavior over domain.WordStore: line filtering,
// fallback to the built-in defaults, uniform random picks via an
// injectable index source, and best-effort persistence of custom words.
package words
