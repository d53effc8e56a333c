// Package store persists the word list on disk.
//
// The format is the external interface other tools may rely on: plain
// UTF-8 text, one word per line, newline-terminated, append-only. Lines
// that fail validation are skipped by readers but never deleted.
package store
