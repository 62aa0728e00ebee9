package config

import "sort"

// Presets are ready-made run configurations for common studies. Each is
// complete enough to run directly; CLI flags can still override fields.
var Presets = map[string]*Config{
	"baseline": {
		Geometry: GeometryConfig{Diameter: 0.254, Blades: 2, HubRatio: 0.2},
		Flow:     FlowConfig{Velocity: 10.0, RPM: 5000, Rho: 1.225},
		Disk:     DiskConfig{Stations: 30, TipLoss: 0.95, Swirl: 0.05},
		Loading:  LoadingConfig{Preset: "elliptic", Order: 4},
		Sweep:    SweepConfig{From: 2000, To: 8000, Step: 500},
		Optimize: OptimizeConfig{Objective: "min_power", ThrustTarget: 15.0, Order: 5, Lower: 0, Upper: 8, Method: "neldermead"},
	},
	"hover": {
		Geometry: GeometryConfig{Diameter: 0.254, Blades: 2, HubRatio: 0.2},
		Flow:     FlowConfig{Velocity: 0.0, RPM: 6000, Rho: 1.225},
		Disk:     DiskConfig{Stations: 30, TipLoss: 0.95, Swirl: 0.05},
		Loading:  LoadingConfig{Preset: "elliptic", Order: 4},
		Sweep:    SweepConfig{From: 3000, To: 9000, Step: 500},
		Optimize: OptimizeConfig{Objective: "min_power", ThrustTarget: 10.0, Order: 5, Lower: 0, Upper: 8, Method: "neldermead"},
	},
	"cruise": {
		Geometry: GeometryConfig{Diameter: 0.254, Blades: 2, HubRatio: 0.2},
		Flow:     FlowConfig{Velocity: 15.0, RPM: 4500, Rho: 1.225},
		Disk:     DiskConfig{Stations: 30, TipLoss: 0.95, Swirl: 0.05},
		Loading:  LoadingConfig{Preset: "quadratic", Order: 4},
		Sweep:    SweepConfig{From: 3000, To: 9000, Step: 500},
		Optimize: OptimizeConfig{Objective: "max_thrust", PowerLimit: 400.0, Order: 5, Lower: 0, Upper: 8, Method: "neldermead"},
	},
	"large_slow": {
		Geometry: GeometryConfig{Diameter: 0.5, Blades: 3, HubRatio: 0.15},
		Flow:     FlowConfig{Velocity: 8.0, RPM: 2500, Rho: 1.225},
		Disk:     DiskConfig{Stations: 40, TipLoss: 0.95, Swirl: 0.05},
		Loading:  LoadingConfig{Preset: "uniform", Order: 4},
		Sweep:    SweepConfig{From: 1000, To: 4000, Step: 250},
		Optimize: OptimizeConfig{Objective: "min_power", ThrustTarget: 30.0, Order: 5, Lower: 0, Upper: 8, Method: "neldermead"},
	},
	"high_altitude": {
		Geometry: GeometryConfig{Diameter: 0.254, Blades: 2, HubRatio: 0.2},
		Flow:     FlowConfig{Velocity: 12.0, RPM: 5500, Rho: 0.9093},
		Disk:     DiskConfig{Stations: 30, TipLoss: 0.95, Swirl: 0.05},
		Loading:  LoadingConfig{Preset: "elliptic", Order: 4},
		Sweep:    SweepConfig{From: 2500, To: 8500, Step: 500},
		Optimize: OptimizeConfig{Objective: "min_power", ThrustTarget: 12.0, Order: 5, Lower: 0, Upper: 8, Method: "neldermead"},
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
	sort.Strings(names)
	return names
}
