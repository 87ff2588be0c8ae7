package engine

import (
	"context"
	"fmt"

	"github.com/san-kum/quadsim/internal/energy"
	"github.com/san-kum/quadsim/internal/planner"
	"github.com/san-kum/quadsim/internal/robot"
	"github.com/san-kum/quadsim/internal/sensor"
)

// stanceOffsets spreads leg targets around the body so the four legs
// track distinct footholds. Cycled when LegCount != 4.
var stanceOffsets = [4]robot.Vec3{
	{X: 0.5, Y: 0.3},
	{X: 0.5, Y: -0.3},
	{X: -0.5, Y: 0.3},
	{X: -0.5, Y: -0.3},
}

// Engine owns one simulation run: the state store, scanner, planner
// and energy log, plus the scan throttle.
type Engine struct {
	cfg       Config
	state     *robot.State
	scanner   *sensor.Scanner
	planner   *planner.Planner
	log       *energy.Log
	metrics   []Metric
	observers []Observer

	step      int
	obstacles sensor.ObstacleSet
	arrived   bool
}

// New validates cfg and builds an engine. Invalid configuration fails
// here, never silently clamped.
func New(cfg Config) (*Engine, error) {
	if cfg.ScanEvery < 1 {
		return nil, fmt.Errorf("%w: scan interval must be positive, got %d", robot.ErrInvalidConfig, cfg.ScanEvery)
	}

	state, err := robot.NewState(cfg.LegCount, cfg.HistoryCapacity)
	if err != nil {
		return nil, err
	}
	scanner, err := sensor.NewScanner(cfg.ScanSamples, cfg.ScanRange, cfg.Seed)
	if err != nil {
		return nil, err
	}
	pl, err := planner.New(cfg.PlanGain, cfg.GoalTolerance)
	if err != nil {
		return nil, err
	}

	state.SetVelocity(cfg.Velocity)

	return &Engine{
		cfg:     cfg,
		state:   state,
		scanner: scanner,
		planner: pl,
		log:     energy.NewLog(cfg.EnergyRate),
	}, nil
}

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// SimulateStep advances the simulation by one step of dt seconds.
func (e *Engine) SimulateStep(dt float64) (StepResult, error) {
	if dt <= 0 {
		return StepResult{}, fmt.Errorf("%w: dt must be positive, got %f", robot.ErrInvalidConfig, dt)
	}

	e.state.AdvancePosition(dt)
	e.state.RecordHistory()

	pose := e.state.Pose()
	if e.cfg.ValidateState && !pose.IsValid() {
		return StepResult{}, fmt.Errorf("%w: step %d", robot.ErrInvalidState, e.step)
	}

	scanned := e.step%e.cfg.ScanEvery == 0
	if scanned {
		readings := e.scanner.Scan()
		e.obstacles = sensor.Detect(readings, e.cfg.ObstacleThreshold)
		e.planner.WithObstacles(e.obstacles)
	}

	delta, arrived := e.planner.PlanStep(pose, e.cfg.Goal)
	e.arrived = arrived

	if err := e.stepLegs(pose, delta); err != nil {
		return StepResult{}, err
	}

	cost := e.log.Record(e.step, delta.Norm())

	r := StepResult{
		Step:      e.step,
		Pose:      pose,
		Scanned:   scanned,
		Arrived:   arrived,
		Obstacles: e.obstacles.Len(),
		Cost:      cost,
	}

	for _, m := range e.metrics {
		m.Observe(r)
	}
	for _, obs := range e.observers {
		obs.OnStep(r)
	}

	e.step++
	return r, nil
}

// stepLegs retargets every leg toward its stance foothold ahead of the
// planned displacement. With ParallelLegs the per-leg updates fan out
// and join before returning.
func (e *Engine) stepLegs(pose, delta robot.Vec3) error {
	ahead := pose.Add(delta)

	if e.cfg.ParallelLegs {
		targets := make([]robot.Vec3, e.cfg.LegCount)
		for i := range targets {
			targets[i] = ahead.Add(stanceOffsets[i%len(stanceOffsets)])
		}
		return e.state.StepLegsParallel(targets)
	}

	for i := 0; i < e.cfg.LegCount; i++ {
		if _, err := e.state.StepLeg(i, ahead.Add(stanceOffsets[i%len(stanceOffsets)])); err != nil {
			return err
		}
	}
	return nil
}

// Simulate drives numSteps steps of dt seconds each. Cancellation is
// cooperative at the step boundary.
func (e *Engine) Simulate(ctx context.Context, numSteps int, dt float64) (*Result, error) {
	if numSteps < 1 {
		return nil, fmt.Errorf("%w: step count must be positive, got %d", robot.ErrInvalidConfig, numSteps)
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	for i := 0; i < numSteps; i++ {
		select {
		case <-ctx.Done():
			return e.result(), ctx.Err()
		default:
		}

		if _, err := e.SimulateStep(dt); err != nil {
			return e.result(), err
		}
	}

	return e.result(), nil
}

func (e *Engine) result() *Result {
	r := &Result{
		FinalPose:   e.state.Pose(),
		Steps:       e.step,
		Scans:       e.scanner.Scans(),
		Arrived:     e.arrived,
		EnergyTotal: e.log.Total(),
		History:     e.state.HistoryWindow(),
		Metrics:     make(map[string]float64, len(e.metrics)),
	}
	for _, m := range e.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}

// PlanToGoal runs a standalone path plan from the current pose using
// the engine's planner and most recent obstacle set.
func (e *Engine) PlanToGoal(maxSteps int) (*planner.Plan, error) {
	return e.planner.PlanPath(e.state.Pose(), e.cfg.Goal, maxSteps)
}

// SetVelocity changes the commanded velocity between steps.
func (e *Engine) SetVelocity(v robot.Vec3) { e.state.SetVelocity(v) }

// Read-only accessors. Mutation never flows through these.

func (e *Engine) Pose() robot.Vec3 { return e.state.Pose() }

func (e *Engine) Legs() []robot.Vec3 { return e.state.Legs() }

func (e *Engine) EnergyTotal() float64 { return e.log.Total() }

func (e *Engine) EnergyLog() []energy.Entry { return e.log.Entries() }

func (e *Engine) Scans() int { return e.scanner.Scans() }

func (e *Engine) StepCount() int { return e.step }

func (e *Engine) Obstacles() sensor.ObstacleSet { return e.obstacles }

func (e *Engine) Goal() robot.Vec3 { return e.cfg.Goal }

func (e *Engine) HistoryWindow() []robot.Vec3 { return e.state.HistoryWindow() }
