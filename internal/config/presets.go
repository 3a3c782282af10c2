package config

import "sort"

// Preset pins a parameter regime worth revisiting by name.
type Preset struct {
	R     float64
	X0    float64
	Steps int
	Note  string
}

var Presets = map[string]Preset{
	"fixed-point": {
		R: 2.8, X0: 0.2, Steps: 100,
		Note: "single stable fixed point at 1-1/r",
	},
	"two-cycle": {
		R: 3.2, X0: 0.2, Steps: 100,
		Note: "first period doubling",
	},
	"four-cycle": {
		R: 3.5, X0: 0.2, Steps: 150,
		Note: "second period doubling",
	},
	"onset": {
		R: 3.5699456, X0: 0.2, Steps: 200,
		Note: "accumulation point, onset of chaos",
	},
	"period-three": {
		R: 3.83, X0: 0.2, Steps: 150,
		Note: "odd window inside the chaotic band",
	},
	"chaos": {
		R: 3.9, X0: 0.2, Steps: 200,
		Note: "fully developed chaos",
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order for stable output.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
