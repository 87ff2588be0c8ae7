package config

var Presets = map[string]*Config{
	"patrol": {
		Name: "patrol", Steps: 1000, Dt: 0.1, Seed: 42,
		HistoryCapacity: 1000, LegCount: 4,
		Scan:       ScanConfig{Samples: 64, Range: 2000, Threshold: 1000, Every: 10},
		Plan:       PlanConfig{Gain: 0.01, Tolerance: 0.1, MaxSteps: 1000},
		EnergyRate: 10,
		Goal:       VecConfig{X: 10, Y: 10},
		Velocity:   VecConfig{X: 1.0, Y: 0.5},
	},
	"sprint": {
		Name: "sprint", Steps: 200, Dt: 0.05, Seed: 42,
		HistoryCapacity: 500, LegCount: 4,
		Scan:         ScanConfig{Samples: 32, Range: 2000, Threshold: 1200, Every: 20},
		Plan:         PlanConfig{Gain: 0.05, Tolerance: 0.1, MaxSteps: 500},
		EnergyRate:   10,
		Goal:         VecConfig{X: 3, Y: 4},
		Velocity:     VecConfig{X: 2.0, Y: 1.0},
		ParallelLegs: true,
	},
	"rough": {
		Name: "rough", Steps: 2000, Dt: 0.1, Seed: 7,
		HistoryCapacity: 1000, LegCount: 4,
		Scan:       ScanConfig{Samples: 256, Range: 2000, Threshold: 800, Every: 5},
		Plan:       PlanConfig{Gain: 0.005, Tolerance: 0.05, MaxSteps: 5000},
		EnergyRate: 15,
		Goal:       VecConfig{X: 20, Y: -5, Z: 1},
		Velocity:   VecConfig{X: 0.5, Y: 0.2},
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
