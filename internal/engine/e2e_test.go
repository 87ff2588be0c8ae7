package engine

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/quadsim/internal/robot"
)

// End-to-end: walk from the origin toward (3,4,0) and verify the
// planner reports arrival with the squared distance inside tolerance
// squared, in a deterministic number of steps.
func TestEndToEnd_WalkToGoal(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	cfg.Goal = robot.Vec3{X: 3, Y: 4}
	cfg.GoalTolerance = 0.1
	cfg.Velocity = robot.Vec3{}

	e, err := New(cfg)
	g.Expect(err).NotTo(HaveOccurred())

	plan, err := e.PlanToGoal(10000)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(plan.Status.String()).To(Equal("arrived"))
	g.Expect(plan.FinalDist * plan.FinalDist).To(BeNumerically("<=", 0.01))
	g.Expect(plan.Steps()).To(BeNumerically(">", 0))

	// Same configuration, same plan: the engine is deterministic.
	e2, err := New(cfg)
	g.Expect(err).NotTo(HaveOccurred())
	plan2, err := e2.PlanToGoal(10000)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(plan2.Steps()).To(Equal(plan.Steps()))
}

func TestEndToEnd_BulkRun(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	cfg.HistoryCapacity = 100

	e, err := New(cfg)
	g.Expect(err).NotTo(HaveOccurred())

	result, err := e.Simulate(context.Background(), 1000, 0.1)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(result.Steps).To(Equal(1000))
	g.Expect(result.Scans).To(Equal(100))
	g.Expect(result.History).To(HaveLen(100))
	g.Expect(result.EnergyTotal).To(BeNumerically(">=", 0))
	g.Expect(result.FinalPose.IsValid()).To(BeTrue())
}
