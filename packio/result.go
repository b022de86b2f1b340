package packio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gopacklab/packcircle/pack"
)

// PoseFile is one rectangle's placement in a result file.
type PoseFile struct {
	CX    float64 `yaml:"cx"`
	CY    float64 `yaml:"cy"`
	Theta float64 `yaml:"theta"`
}

// ResultFile is the on-disk YAML shape for a pack.Result.
type ResultFile struct {
	Radius   float64    `yaml:"radius"`
	Valid    bool       `yaml:"valid"`
	Stage    string     `yaml:"stage"`
	Poses    []PoseFile `yaml:"poses"`
	Warnings []string   `yaml:"warnings,omitempty"`
}

// MarshalResult renders res as YAML, the output half of the round-trip
// serialization contract packio maintains with pack.Result.
func MarshalResult(res pack.Result) ([]byte, error) {
	f := ResultFile{
		Radius:   res.Radius,
		Valid:    res.Valid,
		Stage:    res.StageUsed.String(),
		Poses:    make([]PoseFile, len(res.Poses)),
		Warnings: res.Warnings,
	}

	var i int
	for i = 0; i < len(res.Poses); i++ {
		f.Poses[i] = PoseFile{CX: res.Poses[i].CX, CY: res.Poses[i].CY, Theta: res.Poses[i].Theta}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("packio: rendering result YAML: %w", err)
	}

	return data, nil
}
