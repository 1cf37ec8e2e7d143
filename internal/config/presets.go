package config

var Presets = map[string]map[string]*Config{
	"riemann": {
		"coarse": {
			Lesson: "riemann", Mode: "left",
			Params: map[string]float64{"a": 0, "b": 2, "n": 4, "curve": 2},
		},
		"fine": {
			Lesson: "riemann", Mode: "midpoint",
			Params: map[string]float64{"a": 0, "b": 2, "n": 64, "curve": 2},
		},
		"trapezoid": {
			Lesson: "riemann", Mode: "trapezoid",
			Params: map[string]float64{"a": -1, "b": 1, "n": 12, "curve": 0},
		},
	},
	"tangent": {
		"wide": {
			Lesson: "tangent",
			Params: map[string]float64{"x0": 0.8, "h": 1.5, "curve": 2},
		},
		"limit": {
			Lesson: "tangent",
			Params: map[string]float64{"x0": 0.8, "h": 0.01, "curve": 2},
		},
	},
	"taylor": {
		"line": {
			Lesson: "taylor", Mode: "sin",
			Params: map[string]float64{"degree": 1, "center": 0},
		},
		"wave": {
			Lesson: "taylor", Mode: "sin",
			Params: map[string]float64{"degree": 9, "center": 0},
		},
		"growth": {
			Lesson: "taylor", Mode: "exp",
			Params: map[string]float64{"degree": 6, "center": 0},
		},
	},
	"fourier": {
		"first": {
			Lesson: "fourier", Mode: "square",
			Params: map[string]float64{"harmonics": 1, "speed": 0.6},
		},
		"gibbs": {
			Lesson: "fourier", Mode: "square",
			Params: map[string]float64{"harmonics": 60, "speed": 0.3},
		},
		"smooth": {
			Lesson: "fourier", Mode: "triangle",
			Params: map[string]float64{"harmonics": 5, "speed": 0.6},
		},
	},
	"eigen": {
		"stretch": {
			Lesson: "eigen",
			Params: map[string]float64{"a": 3, "b": 0, "c": 0, "d": 0.5},
		},
		"shear": {
			Lesson: "eigen",
			Params: map[string]float64{"a": 1, "b": 1, "c": 0, "d": 1},
		},
		"rotation": {
			Lesson: "eigen",
			Params: map[string]float64{"a": 0, "b": -1, "c": 1, "d": 0},
		},
	},
	"market": {
		"baseline": {
			Lesson: "market",
			Params: map[string]float64{"demand-max": 10, "demand-slope": 1, "supply-min": 2, "supply-slope": 1},
		},
		"boom": {
			Lesson: "market",
			Params: map[string]float64{"demand-max": 14, "demand-slope": 1, "supply-min": 2, "supply-slope": 1},
		},
	},
	"fieldline": {
		"coarse": {
			Lesson: "fieldline",
			Params: map[string]float64{"radius": 1, "segments": 8, "grid": 9},
		},
		"smooth": {
			Lesson: "fieldline",
			Params: map[string]float64{"radius": 1, "segments": 256, "grid": 11},
		},
	},
}

func GetPreset(lesson, preset string) *Config {
	lessonPresets, ok := Presets[lesson]
	if !ok {
		return nil
	}
	cfg, ok := lessonPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(lesson string) []string {
	lessonPresets, ok := Presets[lesson]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(lessonPresets))
	for name := range lessonPresets {
		names = append(names, name)
	}
	return names
}
