// Package packcircle packs a set of axis-known rectangles into the smallest
// enclosing circle.
//
// Given N rectangles, an outer padding (clearance between every rectangle
// and the circle boundary) and an inner padding (clearance between any two
// rectangles), packcircle searches for centers and, optionally,
// orientations that minimize the enclosing radius.
//
// Under the hood, everything is organized into three subpackages:
//
//	geometry/ — rotated-rectangle corners, the SAT overlap oracle, and the
//	            circle containment oracle
//	pack/     — the Differential Evolution engine, the staged rotation
//	            policy (fixed → discrete-90 → discrete-45 → free), and the
//	            parallel permutation sweep for discrete stages
//	packio/   — loading a problem instance from YAML
//
// A thin CLI lives at cmd/packcli.
//
//	go get github.com/gopacklab/packcircle
package packcircle
