// Package packio loads pack.Instance values from YAML, parses rotation-mode
// names into pack.RotationMode, and renders pack.Result back to YAML for CLI
// and file-based callers. It is a thin collaborator around package pack: no
// packing logic lives here, only parsing, input checks, and serialization.
package packio
