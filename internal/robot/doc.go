// Package robot provides the core state primitives for the walker
// simulation.
//
// The package defines the types owned by one long-lived simulation
// run:
//
//   - [Vec3]: 3D coordinate value type used for pose, velocity,
//     leg targets and displacements
//   - [State]: robot state store (pose, velocity, leg targets,
//     bounded movement history)
//   - [History]: fixed-capacity ring buffer of pose snapshots
//
// # Mutation model
//
// Pose is mutated in place each step; velocity is set externally
// between steps and never mutated by the updater. History records
// poses by value, so later pose mutation never aliases a recorded
// snapshot.
//
// # Thread Safety
//
// State instances are NOT thread-safe. Per-leg kinematics may be
// fanned out with [ParallelFor], which joins before returning; no
// caller ever observes a partially updated leg set.
package robot
