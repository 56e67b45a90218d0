package ports

import (
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

// PoseSource reports the robot's latest fused pose. The runtime refreshes it
// once per control tick before any command reads it.
type PoseSource interface {
	CurrentPose() domain.Pose
}

// LandmarkDetector returns the landmarks visible right now. An empty result
// is a normal answer, not an error.
type LandmarkDetector interface {
	Detections() []domain.Detection
}

// DriverInput returns the current state of the driver and operator
// controllers.
type DriverInput interface {
	Snapshot() domain.InputSnapshot
}

// Clock is the monotonic time source used for timeouts and timed commands.
type Clock interface {
	Now() time.Time
}
