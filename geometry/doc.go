// Package geometry implements the collision primitives shared by the
// packing engine: rotating a rectangle's corners, testing circle
// containment, and testing pairwise separation via the Separating Axis
// Theorem (SAT).
//
// Every function here is a pure function of its numeric inputs — no
// allocation beyond the fixed-size corner arrays, no shared state, safe to
// call from any number of goroutines concurrently.
package geometry
