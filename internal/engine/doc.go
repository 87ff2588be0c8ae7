// Package engine drives the walker control loop.
//
// Each simulation step is a fixed sequence of component calls with no
// internal suspension points: advance pose, record history, scan the
// environment (every Kth step only), detect obstacles, plan the next
// displacement toward the goal, retarget the legs, and account energy.
//
// # Cancellation
//
// [Engine.Simulate] checks the context between steps only; stopping a
// run never leaves the state store inconsistent.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Per-leg kinematics may run in
// parallel inside a step (ParallelLegs), but the fan-out joins before
// the step returns.
package engine
