package config

var Presets = map[string]*Config{
	"twitch": {
		Excitation: "pulse", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.0,
		Stimulus: StimulusConfig{Amplitude: 1.0, Duration: 0.005},
	},
	"brief": {
		Excitation: "pulse", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.0,
		Stimulus: StimulusConfig{Amplitude: 1.0, Duration: 0.05},
	},
	"sustained": {
		Excitation: "pulse", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.5,
		Stimulus: StimulusConfig{Amplitude: 1.0, Duration: 0.5},
	},
	"submax": {
		Excitation: "pulse", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.0,
		Stimulus: StimulusConfig{Amplitude: 0.4, Duration: 0.2},
	},
	"train": {
		Excitation: "train", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.5,
		Stimulus: StimulusConfig{Amplitude: 1.0, Duration: 0.01, Period: 0.05},
	},
	"ramp": {
		Excitation: "ramp", Integrator: "rk4", Muscle: "linear",
		Dt: 0.0001, Duration: 1.5,
		Stimulus: StimulusConfig{Amplitude: 0.8, Rise: 0.5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
