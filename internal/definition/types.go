package definition

import "fmt"

//go:generate go tool stringer -type=Format -linecomment -output=format_string.go

// Format selects a document parser.
type Format int

const (
	FormatAuto    Format = iota // auto
	FormatAlmanac               // almanac
	FormatYAML                  // yaml
)

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	for f := FormatAuto; f <= FormatYAML; f++ {
		if f.String() == name {
			return f, nil
		}
	}

	return FormatAuto, fmt.Errorf("unknown format %q (want auto, almanac or yaml)", name)
}

// Document is a complete set of stage definitions plus optional seeds.
type Document struct {
	Version  string  `yaml:"version"`
	Entry    string  `yaml:"entry"`
	Terminal string  `yaml:"terminal"`
	Stages   []Stage `yaml:"stages"`
	Seeds    Seeds   `yaml:"seeds,omitempty"`
}

// Stage converts values of category From into category To.
type Stage struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Ranges []Triple `yaml:"ranges"`
}

// Name returns the stage name in almanac header form.
func (s Stage) Name() string {
	return s.From + "-to-" + s.To
}

// Triple maps Length values starting at Source onto Length values starting
// at Dest.
type Triple struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// Seeds are the query inputs shipped with a document.
type Seeds struct {
	Points []uint64    `yaml:"points,omitempty"`
	Ranges []SeedRange `yaml:"ranges,omitempty"`
}

// IsZero reports whether no seeds are present; yaml.v3 uses it for omitempty.
func (s Seeds) IsZero() bool {
	return len(s.Points) == 0 && len(s.Ranges) == 0
}

// SeedRange is Length consecutive values starting at Start.
type SeedRange struct {
	Start  uint64
	Length uint64
}
