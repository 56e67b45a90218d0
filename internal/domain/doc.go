// Package domain contains the value types shared by every layer of the
// autonomy runtime: robot pose, landmark detections, driver input snapshots,
// lane and stage status views, and the sentinel errors used across packages.
// It has no dependencies on other internal packages.
package domain
