package engine

import "github.com/san-kum/quadsim/internal/robot"

// Config carries every tunable of one simulation run. There is no
// process-wide state: construct a Config, pass it to New, discard both
// with the run.
type Config struct {
	HistoryCapacity   int     // bounded movement-history size
	LegCount          int     // fixed leg count
	ScanSamples       int     // readings per environment scan
	ScanRange         float64 // reading magnitude upper bound
	ObstacleThreshold float64 // strict detection threshold
	GoalTolerance     float64 // arrival radius
	PlanGain          float64 // fraction of remaining delta per step
	ScanEvery         int     // steps between scans (K)
	EnergyRate        float64 // energy units per displacement unit
	Goal              robot.Vec3
	Velocity          robot.Vec3
	Seed              int64
	ParallelLegs      bool
	ValidateState     bool
}

func DefaultConfig() Config {
	return Config{
		HistoryCapacity:   1000,
		LegCount:          4,
		ScanSamples:       64,
		ScanRange:         2000,
		ObstacleThreshold: 1000,
		GoalTolerance:     0.1,
		PlanGain:          0.01,
		ScanEvery:         10,
		EnergyRate:        10,
		Goal:              robot.Vec3{X: 10, Y: 10},
		Velocity:          robot.Vec3{X: 1.0, Y: 0.5},
		Seed:              42,
		ValidateState:     true,
	}
}

// StepResult reports one simulation step.
type StepResult struct {
	Step      int
	Pose      robot.Vec3
	Scanned   bool // whether the scanner fired this step
	Arrived   bool // goal within tolerance at this step
	Obstacles int  // size of the most recent obstacle set
	Cost      float64
}

// Result reports a bulk run.
type Result struct {
	FinalPose   robot.Vec3
	Steps       int
	Scans       int
	Arrived     bool
	EnergyTotal float64
	History     []robot.Vec3 // bounded window, oldest first
	Metrics     map[string]float64
}

// Metric accumulates a per-run statistic from step results.
type Metric interface {
	Name() string
	Observe(r StepResult)
	Value() float64
	Reset()
}

// Observer is notified after every step.
type Observer interface {
	OnStep(r StepResult)
}
