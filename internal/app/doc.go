// Package app wires application dependencies for the CLI.
//
// It builds the word store and the services over it from Config, exposing
// them via the Wire struct for commands to use.
package app
