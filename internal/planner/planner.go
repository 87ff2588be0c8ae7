// Package planner computes goal-seeking trajectories with
// squared-distance termination.
package planner

import (
	"fmt"

	"github.com/san-kum/quadsim/internal/robot"
	"github.com/san-kum/quadsim/internal/sensor"
)

// Status is the terminal state of a planning run. Exhausting the step
// budget is reported, not raised: callers distinguish success from
// budget exhaustion without error handling.
type Status int

const (
	Arrived Status = iota
	BudgetExhausted
)

func (s Status) String() string {
	switch s {
	case Arrived:
		return "arrived"
	case BudgetExhausted:
		return "budget_exhausted"
	default:
		return "unknown"
	}
}

// Planner advances a candidate position toward a goal by a fixed gain
// per iteration, terminating once the squared distance to the goal is
// within tolerance squared. The root is never taken inside the
// termination check.
type Planner struct {
	gain      float64
	tolerance float64
	tolSq     float64
	obstacles sensor.ObstacleSet
}

// New creates a planner. gain is the fraction of the remaining delta
// applied per iteration; tolerance is the arrival radius.
func New(gain, tolerance float64) (*Planner, error) {
	if gain <= 0 {
		return nil, fmt.Errorf("%w: plan gain must be positive, got %f", robot.ErrInvalidConfig, gain)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: goal tolerance must be positive, got %f", robot.ErrInvalidConfig, tolerance)
	}
	return &Planner{gain: gain, tolerance: tolerance, tolSq: tolerance * tolerance}, nil
}

// WithObstacles attaches the most recent obstacle set for reporting.
// The trajectory does not route around obstacles; avoidance is outside
// this planner's contract.
func (p *Planner) WithObstacles(o sensor.ObstacleSet) *Planner {
	p.obstacles = o
	return p
}

func (p *Planner) Tolerance() float64 { return p.tolerance }

// PlanStep computes the next displacement from current toward goal.
// Arrival holds iff the squared distance is <= tolerance squared
// (boundary inclusive); on arrival the displacement is zero.
func (p *Planner) PlanStep(current, goal robot.Vec3) (robot.Vec3, bool) {
	delta := goal.Sub(current)
	if delta.NormSq() <= p.tolSq {
		return robot.Vec3{}, true
	}
	return delta.Scale(p.gain), false
}

// Plan is the result of a full planning run.
type Plan struct {
	Path      []robot.Vec3
	Status    Status
	FinalDist float64 // reported once at the end, the only sqrt taken
	Obstacles int
}

// Steps is the number of displacements applied.
func (pl *Plan) Steps() int { return len(pl.Path) }

// PlanPath iterates PlanStep from start until arrival or the step
// budget is exhausted. A goal already within tolerance yields a
// zero-step plan with Status Arrived.
func (p *Planner) PlanPath(start, goal robot.Vec3, maxSteps int) (*Plan, error) {
	if maxSteps < 1 {
		return nil, fmt.Errorf("%w: max steps must be positive, got %d", robot.ErrInvalidConfig, maxSteps)
	}

	plan := &Plan{
		Status:    BudgetExhausted,
		Obstacles: p.obstacles.Len(),
	}

	current := start
	for step := 0; step < maxSteps; step++ {
		delta, arrived := p.PlanStep(current, goal)
		if arrived {
			plan.Status = Arrived
			break
		}
		current = current.Add(delta)
		plan.Path = append(plan.Path, current)
	}

	// Check arrival on the final budgeted position as well.
	if plan.Status == BudgetExhausted {
		if _, arrived := p.PlanStep(current, goal); arrived {
			plan.Status = Arrived
		}
	}

	plan.FinalDist = goal.Sub(current).Norm()
	return plan, nil
}
