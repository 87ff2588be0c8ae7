package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadsim/internal/engine"
	"github.com/san-kum/quadsim/internal/robot"
)

const (
	DefaultHistoryCapacity = 1000
	DefaultLegCount        = 4
	DefaultScanSamples     = 64
	DefaultScanRange       = 2000.0
	DefaultThreshold       = 1000.0
	DefaultTolerance       = 0.1
	DefaultGain            = 0.01
	DefaultScanEvery       = 10
	DefaultEnergyRate      = 10.0
	DefaultDt              = 0.1
	DefaultSteps           = 100
)

type Config struct {
	Name            string     `yaml:"name"`
	Steps           int        `yaml:"steps"`
	Dt              float64    `yaml:"dt"`
	Seed            int64      `yaml:"seed"`
	HistoryCapacity int        `yaml:"history_capacity"`
	LegCount        int        `yaml:"leg_count"`
	Scan            ScanConfig `yaml:"scan"`
	Plan            PlanConfig `yaml:"plan"`
	EnergyRate      float64    `yaml:"energy_rate"`
	Goal            VecConfig  `yaml:"goal"`
	Velocity        VecConfig  `yaml:"velocity"`
	ParallelLegs    bool       `yaml:"parallel_legs"`
}

type ScanConfig struct {
	Samples   int     `yaml:"samples"`
	Range     float64 `yaml:"range"`
	Threshold float64 `yaml:"threshold"`
	Every     int     `yaml:"every"`
}

type PlanConfig struct {
	Gain      float64 `yaml:"gain"`
	Tolerance float64 `yaml:"tolerance"`
	MaxSteps  int     `yaml:"max_steps"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecConfig) Vec3() robot.Vec3 { return robot.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func DefaultConfig() *Config {
	return &Config{
		Name:            "walk",
		Steps:           DefaultSteps,
		Dt:              DefaultDt,
		Seed:            42,
		HistoryCapacity: DefaultHistoryCapacity,
		LegCount:        DefaultLegCount,
		Scan: ScanConfig{
			Samples:   DefaultScanSamples,
			Range:     DefaultScanRange,
			Threshold: DefaultThreshold,
			Every:     DefaultScanEvery,
		},
		Plan: PlanConfig{
			Gain:      DefaultGain,
			Tolerance: DefaultTolerance,
			MaxSteps:  1000,
		},
		EnergyRate: DefaultEnergyRate,
		Goal:       VecConfig{X: 10, Y: 10},
		Velocity:   VecConfig{X: 1.0, Y: 0.5},
	}
}

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

// Validate rejects values the engine would refuse, with the same
// fail-at-construction semantics.
func (c *Config) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be positive, got %d", robot.ErrInvalidConfig, c.Steps)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", robot.ErrInvalidConfig, c.Dt)
	}
	if c.Plan.MaxSteps < 1 {
		return fmt.Errorf("%w: plan max steps must be positive, got %d", robot.ErrInvalidConfig, c.Plan.MaxSteps)
	}
	_, err := engine.New(c.ToEngine())
	return err
}

// ToEngine maps the file configuration onto the engine configuration.
func (c *Config) ToEngine() engine.Config {
	return engine.Config{
		HistoryCapacity:   c.HistoryCapacity,
		LegCount:          c.LegCount,
		ScanSamples:       c.Scan.Samples,
		ScanRange:         c.Scan.Range,
		ObstacleThreshold: c.Scan.Threshold,
		GoalTolerance:     c.Plan.Tolerance,
		PlanGain:          c.Plan.Gain,
		ScanEvery:         c.Scan.Every,
		EnergyRate:        c.EnergyRate,
		Goal:              c.Goal.Vec3(),
		Velocity:          c.Velocity.Vec3(),
		Seed:              c.Seed,
		ParallelLegs:      c.ParallelLegs,
		ValidateState:     true,
	}
}
