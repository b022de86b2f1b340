package pack

import (
	"fmt"
	"strings"
)

// String renders a one-line summary of r, e.g. for log lines.
func (r Result) String() string {
	status := "infeasible"
	if r.Valid {
		status = "valid"
	}

	return fmt.Sprintf("pack.Result{%s, stage=%s, R=%.6f, rects=%d, gens=%d, perms=%d}",
		status, r.StageUsed, r.Radius, len(r.Poses), r.Generations, r.PermutationCountAttempted)
}

// GoString renders a multi-line, field-by-field view of r suitable for
// %#v formatting and interactive debugging.
func (r Result) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pack.Result{\n")
	fmt.Fprintf(&b, "\tRadius: %.6f,\n", r.Radius)
	fmt.Fprintf(&b, "\tValid: %v,\n", r.Valid)
	fmt.Fprintf(&b, "\tStageUsed: %s,\n", r.StageUsed)
	fmt.Fprintf(&b, "\tGenerations: %d,\n", r.Generations)
	fmt.Fprintf(&b, "\tPermutationCountAttempted: %d,\n", r.PermutationCountAttempted)
	fmt.Fprintf(&b, "\tPoses: [\n")
	var i int
	for i = 0; i < len(r.Poses); i++ {
		fmt.Fprintf(&b, "\t\t{CX: %.6f, CY: %.6f, Theta: %.6f},\n", r.Poses[i].CX, r.Poses[i].CY, r.Poses[i].Theta)
	}
	fmt.Fprintf(&b, "\t],\n")
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\tWarnings: %v,\n", r.Warnings)
	}
	fmt.Fprintf(&b, "}")

	return b.String()
}
