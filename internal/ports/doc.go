// Package ports defines interfaces between layers in the hexagonal architecture.
// Device ports (motors, servos, pose, landmarks, driver input, clock) are
// implemented by outbound adapters and consumed by subsystems and commands.
// Service ports are implemented by the application layer and called by handlers.
package ports
