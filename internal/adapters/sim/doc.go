// Package sim is an in-memory robot: motors that ramp towards their targets,
// a claw servo, wheel odometry integrated into a field pose, and a camera
// that reports landmarks from field geometry. The autonomy binary runs
// against it when no hardware is attached, and integration tests use it to
// exercise commands end to end.
package sim
