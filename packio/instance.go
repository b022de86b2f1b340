package packio

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gopacklab/packcircle/pack"
)

// ErrEmptyRectangleList is returned when an instance file names zero
// rectangles.
var ErrEmptyRectangleList = errors.New("packio: instance has no rectangles")

// RectangleSpec is one rectangle entry in an instance file.
type RectangleSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// InstanceFile is the on-disk YAML shape for a pack.Instance.
type InstanceFile struct {
	Rectangles []RectangleSpec `yaml:"rectangles"`
	OuterPad   float64         `yaml:"outerPad"`
	InnerPad   float64         `yaml:"innerPad"`
}

// MarshalInstance renders inst as InstanceFile YAML, so a pack.Instance can
// be written back out the same shape it was read in.
func MarshalInstance(inst pack.Instance) ([]byte, error) {
	f := InstanceFile{
		Rectangles: make([]RectangleSpec, len(inst.Rectangles)),
		OuterPad:   inst.OuterPad,
		InnerPad:   inst.InnerPad,
	}

	var i int
	for i = 0; i < len(inst.Rectangles); i++ {
		f.Rectangles[i] = RectangleSpec{W: inst.Rectangles[i].W, H: inst.Rectangles[i].H}
	}

	return yaml.Marshal(f)
}

// ToInstance converts a parsed InstanceFile into the pack.Instance type the
// core solver consumes.
func (f InstanceFile) ToInstance() pack.Instance {
	rects := make([]pack.Rectangle, len(f.Rectangles))
	var i int
	for i = 0; i < len(f.Rectangles); i++ {
		rects[i] = pack.Rectangle{W: f.Rectangles[i].W, H: f.Rectangles[i].H}
	}

	return pack.Instance{
		Rectangles: rects,
		OuterPad:   f.OuterPad,
		InnerPad:   f.InnerPad,
	}
}

// LoadInstanceFromBytes parses a YAML instance, applying input-loader
// validation (non-empty rectangle list, positive dimensions, non-negative
// padding) before pack.Solve's own defense in depth runs.
func LoadInstanceFromBytes(data []byte) (pack.Instance, error) {
	var f InstanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return pack.Instance{}, fmt.Errorf("packio: parsing instance YAML: %w", err)
	}

	if len(f.Rectangles) == 0 {
		return pack.Instance{}, ErrEmptyRectangleList
	}
	if f.OuterPad < 0 || f.InnerPad < 0 {
		return pack.Instance{}, pack.ErrNegativePadding
	}
	for _, r := range f.Rectangles {
		if r.W <= 0 || r.H <= 0 {
			return pack.Instance{}, pack.ErrNonPositiveDimension
		}
	}

	return f.ToInstance(), nil
}

// LoadInstance reads and parses a YAML instance file from path.
func LoadInstance(path string) (pack.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pack.Instance{}, fmt.Errorf("packio: reading instance file: %w", err)
	}

	return LoadInstanceFromBytes(data)
}
