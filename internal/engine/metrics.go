package engine

import "github.com/san-kum/quadsim/internal/robot"

// DistanceToGoal tracks the distance between pose and goal at the most
// recent step.
type DistanceToGoal struct {
	goal robot.Vec3
	dist float64
}

func NewDistanceToGoal(goal robot.Vec3) *DistanceToGoal {
	return &DistanceToGoal{goal: goal}
}

func (d *DistanceToGoal) Name() string { return "distance_to_goal" }

func (d *DistanceToGoal) Observe(r StepResult) {
	d.dist = d.goal.Sub(r.Pose).Norm()
}

func (d *DistanceToGoal) Value() float64 { return d.dist }

func (d *DistanceToGoal) Reset() { d.dist = 0 }

// EnergyPerStep tracks the mean per-step energy cost.
type EnergyPerStep struct {
	sum     float64
	samples int
}

func NewEnergyPerStep() *EnergyPerStep { return &EnergyPerStep{} }

func (e *EnergyPerStep) Name() string { return "energy_per_step" }

func (e *EnergyPerStep) Observe(r StepResult) {
	e.sum += r.Cost
	e.samples++
}

func (e *EnergyPerStep) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *EnergyPerStep) Reset() {
	e.sum = 0
	e.samples = 0
}

// ScanRate tracks the fraction of steps on which the scanner fired.
type ScanRate struct {
	scans   int
	samples int
}

func NewScanRate() *ScanRate { return &ScanRate{} }

func (s *ScanRate) Name() string { return "scan_rate" }

func (s *ScanRate) Observe(r StepResult) {
	s.samples++
	if r.Scanned {
		s.scans++
	}
}

func (s *ScanRate) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.scans) / float64(s.samples)
}

func (s *ScanRate) Reset() {
	s.scans = 0
	s.samples = 0
}
