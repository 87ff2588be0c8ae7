package robot

import "fmt"

// State is the robot state store: pose, velocity, per-leg target
// positions and the bounded movement history. One State is owned by
// one simulation run and mutated only between steps.
type State struct {
	pose     Vec3
	velocity Vec3
	legs     []Vec3
	history  *History
}

// NewState creates a state store with legCount leg targets and a
// movement history bounded at historyCapacity snapshots.
func NewState(legCount, historyCapacity int) (*State, error) {
	if legCount < 1 {
		return nil, fmt.Errorf("%w: leg count must be positive, got %d", ErrInvalidConfig, legCount)
	}
	h, err := NewHistory(historyCapacity)
	if err != nil {
		return nil, err
	}
	return &State{
		legs:    make([]Vec3, legCount),
		history: h,
	}, nil
}

// AdvancePosition mutates the pose in place from the current velocity
// over dt. No new pose value is allocated.
func (s *State) AdvancePosition(dt float64) {
	s.pose.X += s.velocity.X * dt
	s.pose.Y += s.velocity.Y * dt
	s.pose.Z += s.velocity.Z * dt
}

// RecordHistory appends the current pose by value into the bounded
// history ring.
func (s *State) RecordHistory() {
	s.history.Push(s.pose)
}

// StepLeg computes the displacement from leg i toward target as direct
// per-axis subtraction, moves the leg to the target in place, and
// returns the displacement. Fails with ErrLegIndex when i is outside
// the fixed leg range.
func (s *State) StepLeg(i int, target Vec3) (Vec3, error) {
	if i < 0 || i >= len(s.legs) {
		return Vec3{}, fmt.Errorf("%w: %d (legs: %d)", ErrLegIndex, i, len(s.legs))
	}
	d := target.Sub(s.legs[i])
	s.legs[i] = target
	return d, nil
}

// StepLegsParallel retargets every leg concurrently. Legs are
// independent within a step; the fan-out joins before returning, so
// callers never observe a partially updated leg set. targets must
// have one entry per leg.
func (s *State) StepLegsParallel(targets []Vec3) error {
	if len(targets) != len(s.legs) {
		return fmt.Errorf("%w: %d targets for %d legs", ErrLegIndex, len(targets), len(s.legs))
	}
	ParallelFor(len(s.legs), 1, func(start, end int) {
		for i := start; i < end; i++ {
			s.legs[i] = targets[i]
		}
	})
	return nil
}

// SetVelocity replaces the velocity. The updater consumes velocity but
// never mutates it.
func (s *State) SetVelocity(v Vec3) { s.velocity = v }

// SetPose teleports the robot. Used for initial placement.
func (s *State) SetPose(p Vec3) { s.pose = p }

func (s *State) Pose() Vec3 { return s.pose }

func (s *State) Velocity() Vec3 { return s.velocity }

func (s *State) LegCount() int { return len(s.legs) }

// Leg returns the current target of leg i.
func (s *State) Leg(i int) (Vec3, error) {
	if i < 0 || i >= len(s.legs) {
		return Vec3{}, fmt.Errorf("%w: %d (legs: %d)", ErrLegIndex, i, len(s.legs))
	}
	return s.legs[i], nil
}

// Legs returns a copy of all leg targets.
func (s *State) Legs() []Vec3 {
	out := make([]Vec3, len(s.legs))
	copy(out, s.legs)
	return out
}

// HistoryWindow returns the bounded movement history, oldest first.
func (s *State) HistoryWindow() []Vec3 { return s.history.Snapshot() }

func (s *State) HistoryLen() int { return s.history.Len() }

func (s *State) HistoryCap() int { return s.history.Cap() }
