// Package game implements the hangman session state machine: guess
// validation and deduplication, hit/miss accounting, and win/loss
// determination. It holds no I/O; word selection and rendering live
// elsewhere.
package game
