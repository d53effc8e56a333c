// Package setup gates which words may start a session.
//
// Both entry paths go through it: solo play asks for a random candidate,
// multiplayer setup supplies a raw word that must validate before it is
// persisted and used.
package setup
