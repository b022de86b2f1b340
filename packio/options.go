package packio

import (
	"fmt"

	"github.com/gopacklab/packcircle/pack"
)

// ParseRotationMode maps a CLI/config string to a pack.RotationMode value,
// accepting the same names Result.StageUsed.String() produces.
func ParseRotationMode(s string) (pack.RotationMode, error) {
	switch s {
	case "FIXED_0":
		return pack.FixedZero, nil
	case "DISCRETE_90":
		return pack.Discrete90, nil
	case "DISCRETE_45":
		return pack.Discrete45, nil
	case "FREE":
		return pack.Free, nil
	case "AUTO", "":
		return pack.Auto, nil
	default:
		return 0, fmt.Errorf("packio: unknown rotation mode %q", s)
	}
}
