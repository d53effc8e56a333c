// Package commands defines the hangman CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - play        Single-player round with a random word
//   - duel        Player 1 sets the word, player 2 guesses it
//   - words add   Validate and append words to the stored list
//   - words list  Print the usable word list
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides and builds the dependency graph (word store and services)
// before any subcommand runs.
package commands
