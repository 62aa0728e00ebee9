package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDiameter  = 0.254
	DefaultBlades    = 2
	DefaultHubRatio  = 0.2
	DefaultVelocity  = 10.0
	DefaultRPM       = 5000.0
	DefaultRho       = 1.225
	DefaultStations  = 30
	DefaultTipLoss   = 0.95
	DefaultSwirl     = 0.05
	DefaultPreset    = "elliptic"
	DefaultOrder     = 4
	DefaultSweepFrom = 2000.0
	DefaultSweepTo   = 8000.0
	DefaultSweepStep = 500.0
)

type Config struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Flow     FlowConfig     `yaml:"flow"`
	Disk     DiskConfig     `yaml:"disk"`
	Loading  LoadingConfig  `yaml:"loading"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Optimize OptimizeConfig `yaml:"optimize"`
}

type GeometryConfig struct {
	Diameter float64 `yaml:"diameter"`
	Blades   int     `yaml:"blades"`
	HubRatio float64 `yaml:"hub_ratio"`
}

type FlowConfig struct {
	Velocity float64 `yaml:"velocity"`
	RPM      float64 `yaml:"rpm"`
	Rho      float64 `yaml:"rho"`
}

type DiskConfig struct {
	Stations int     `yaml:"stations"`
	TipLoss  float64 `yaml:"tip_loss"`
	Swirl    float64 `yaml:"swirl"`
}

type LoadingConfig struct {
	Preset string    `yaml:"preset"`
	Order  int       `yaml:"order"`
	Coeffs []float64 `yaml:"coeffs"` // explicit coefficients override the preset
}

type SweepConfig struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

type OptimizeConfig struct {
	Objective    string  `yaml:"objective"`
	ThrustTarget float64 `yaml:"thrust_target"`
	PowerLimit   float64 `yaml:"power_limit"`
	Order        int     `yaml:"order"`
	Lower        float64 `yaml:"lower"`
	Upper        float64 `yaml:"upper"`
	Method       string  `yaml:"method"`
}

func DefaultConfig() *Config {
	return &Config{
		Geometry: GeometryConfig{
			Diameter: DefaultDiameter,
			Blades:   DefaultBlades,
			HubRatio: DefaultHubRatio,
		},
		Flow: FlowConfig{
			Velocity: DefaultVelocity,
			RPM:      DefaultRPM,
			Rho:      DefaultRho,
		},
		Disk: DiskConfig{
			Stations: DefaultStations,
			TipLoss:  DefaultTipLoss,
			Swirl:    DefaultSwirl,
		},
		Loading: LoadingConfig{
			Preset: DefaultPreset,
			Order:  DefaultOrder,
		},
		Sweep: SweepConfig{
			From: DefaultSweepFrom,
			To:   DefaultSweepTo,
			Step: DefaultSweepStep,
		},
		Optimize: OptimizeConfig{
			Objective:    "min_power",
			ThrustTarget: 15.0,
			Order:        5,
			Lower:        0.0,
			Upper:        8.0,
			Method:       "neldermead",
		},
	}
}

// Load reads a YAML config on top of the defaults, so partial files only
// override what they mention.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
