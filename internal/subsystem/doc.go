// Package subsystem groups raw actuator ports into the mechanisms commands
// drive: the mecanum drivetrain, the shoulder/slide arm with its claw, and
// the intake roller. Each subsystem is written by exactly one lane; the
// types here do no locking of their own.
package subsystem
