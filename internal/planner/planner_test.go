package planner

import (
	"errors"
	"testing"

	"github.com/san-kum/quadsim/internal/robot"
	"github.com/san-kum/quadsim/internal/sensor"
)

func TestPlanStep_ArrivalBoundary(t *testing.T) {
	p, err := New(0.01, 0.1)
	if err != nil {
		t.Fatalf("new planner failed: %v", err)
	}

	tests := []struct {
		name    string
		current robot.Vec3
		goal    robot.Vec3
		arrived bool
	}{
		{"at goal", robot.Vec3{X: 1, Y: 1, Z: 1}, robot.Vec3{X: 1, Y: 1, Z: 1}, true},
		{"inside tolerance", robot.Vec3{X: 0, Y: 0, Z: 0}, robot.Vec3{X: 0.05, Y: 0, Z: 0}, true},
		{"exactly at tolerance", robot.Vec3{X: 0, Y: 0, Z: 0}, robot.Vec3{X: 0.1, Y: 0, Z: 0}, true},
		{"just outside", robot.Vec3{X: 0, Y: 0, Z: 0}, robot.Vec3{X: 0.11, Y: 0, Z: 0}, false},
		{"far away", robot.Vec3{X: 0, Y: 0, Z: 0}, robot.Vec3{X: 3, Y: 4, Z: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, arrived := p.PlanStep(tt.current, tt.goal)
			if arrived != tt.arrived {
				t.Errorf("arrived = %v, want %v", arrived, tt.arrived)
			}
			if arrived && delta != (robot.Vec3{}) {
				t.Errorf("arrival must report zero displacement, got %v", delta)
			}
		})
	}
}

func TestPlanStep_Direction(t *testing.T) {
	p, _ := New(0.01, 0.1)

	delta, arrived := p.PlanStep(robot.Vec3{}, robot.Vec3{X: 10, Y: 0, Z: 0})
	if arrived {
		t.Fatal("should not arrive 10 units away")
	}
	if delta.X != 0.1 || delta.Y != 0 || delta.Z != 0 {
		t.Errorf("delta = %v, want {0.1 0 0}", delta)
	}
}

func TestPlanPath_Arrives(t *testing.T) {
	p, _ := New(0.01, 0.1)

	plan, err := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 3, Y: 4, Z: 0}, 10000)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Status != Arrived {
		t.Fatalf("expected arrival, got %v after %d steps", plan.Status, plan.Steps())
	}
	if plan.FinalDist > 0.1 {
		t.Errorf("final distance %v exceeds tolerance", plan.FinalDist)
	}
	if plan.FinalDist*plan.FinalDist > 0.01 {
		t.Errorf("final squared distance %v exceeds tolerance squared", plan.FinalDist*plan.FinalDist)
	}
	if plan.Steps() == 0 {
		t.Error("expected a non-trivial path")
	}
}

func TestPlanPath_Deterministic(t *testing.T) {
	p, _ := New(0.01, 0.1)

	a, _ := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 3, Y: 4, Z: 0}, 10000)
	b, _ := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 3, Y: 4, Z: 0}, 10000)

	if a.Steps() != b.Steps() {
		t.Errorf("step counts differ: %d vs %d", a.Steps(), b.Steps())
	}
}

func TestPlanPath_GoalEqualsStart(t *testing.T) {
	p, _ := New(0.01, 0.1)

	start := robot.Vec3{X: 2, Y: 2, Z: 2}
	plan, err := p.PlanPath(start, start, 1000)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Status != Arrived {
		t.Errorf("expected immediate arrival, got %v", plan.Status)
	}
	if plan.Steps() != 0 {
		t.Errorf("expected zero steps, got %d", plan.Steps())
	}
	if plan.FinalDist != 0 {
		t.Errorf("expected zero final distance, got %v", plan.FinalDist)
	}
}

func TestPlanPath_BudgetExhausted(t *testing.T) {
	p, _ := New(0.001, 0.001)

	plan, err := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 100, Y: 100, Z: 100}, 10)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Status != BudgetExhausted {
		t.Errorf("expected budget exhaustion, got %v", plan.Status)
	}
	if plan.Steps() != 10 {
		t.Errorf("expected 10 steps, got %d", plan.Steps())
	}
}

func TestPlanPath_ObstaclesReportedOnly(t *testing.T) {
	p, _ := New(0.01, 0.1)
	p.WithObstacles(sensor.Detect([]sensor.Reading{5, 5, 9, 9, 2}, 4))

	plan, err := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 1, Y: 0, Z: 0}, 10000)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Obstacles != 2 {
		t.Errorf("expected 2 obstacles reported, got %d", plan.Obstacles)
	}
	if plan.Status != Arrived {
		t.Errorf("obstacles must not block the trajectory: %v", plan.Status)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		gain      float64
		tolerance float64
	}{
		{"zero gain", 0, 0.1},
		{"negative gain", -0.01, 0.1},
		{"zero tolerance", 0.01, 0},
		{"negative tolerance", 0.01, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.gain, tt.tolerance); !errors.Is(err, robot.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestPlanPath_InvalidBudget(t *testing.T) {
	p, _ := New(0.01, 0.1)
	if _, err := p.PlanPath(robot.Vec3{}, robot.Vec3{X: 1, Y: 0, Z: 0}, 0); !errors.Is(err, robot.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero budget, got %v", err)
	}
}

func BenchmarkPlanStep(b *testing.B) {
	p, _ := New(0.01, 0.1)
	current := robot.Vec3{}
	goal := robot.Vec3{X: 3, Y: 4, Z: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.PlanStep(current, goal)
	}
}

func BenchmarkPlanPath(b *testing.B) {
	p, _ := New(0.01, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.PlanPath(robot.Vec3{}, robot.Vec3{X: 3, Y: 4, Z: 0}, 10000)
	}
}
