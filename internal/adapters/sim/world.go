package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/pacer"
)

// Landmark is a fiducial placed on the field. Facing is the direction its
// face points, in radians.
type Landmark struct {
	ID     int
	X      float64
	Y      float64
	Facing float64
}

// Config describes the simulated robot and field.
type Config struct {
	Encoder      motion.Encoder
	TicksPerStep float64
	TrackWidthMM float64
	WheelBaseMM  float64
	Start        domain.Pose

	Landmarks     []Landmark
	CameraFOVDeg  float64
	CameraRangeMM float64
}

// World owns every simulated device and the robot's true pose.
type World struct {
	cfg Config

	LeftFront  *Motor
	RightFront *Motor
	LeftBack   *Motor
	RightBack  *Motor
	Shoulder   *Motor
	Slide      *Motor
	Intake     *Motor
	Claw       *Servo

	mu    sync.RWMutex
	pose  domain.Pose
	steps int
}

// NewWorld creates a world with every motor stopped at zero.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:        cfg,
		LeftFront:  NewMotor("left_front", cfg.TicksPerStep),
		RightFront: NewMotor("right_front", cfg.TicksPerStep),
		LeftBack:   NewMotor("left_back", cfg.TicksPerStep),
		RightBack:  NewMotor("right_back", cfg.TicksPerStep),
		Shoulder:   NewMotor("shoulder", cfg.TicksPerStep),
		Slide:      NewMotor("slide", cfg.TicksPerStep),
		Intake:     NewMotor("intake", cfg.TicksPerStep),
		Claw:       NewServo(0),
		pose:       cfg.Start,
	}
}

// CurrentPose implements ports.PoseSource.
func (w *World) CurrentPose() domain.Pose {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pose
}

// SetPose teleports the robot.
func (w *World) SetPose(p domain.Pose) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pose = p
}

// Steps returns how many physics steps have run.
func (w *World) Steps() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.steps
}

// Step advances every motor once and integrates the drive wheel deltas into
// the pose.
func (w *World) Step() {
	mm := w.cfg.Encoder.MMPerTick()
	lf := w.LeftFront.Step() * mm
	rf := w.RightFront.Step() * mm
	lb := w.LeftBack.Step() * mm
	rb := w.RightBack.Step() * mm
	w.Shoulder.Step()
	w.Slide.Step()
	w.Intake.Step()

	forward := (lf + rf + lb + rb) / 4
	strafe := (-lf + rf + lb - rb) / 4
	arc := (-lf + rf - lb + rb) / 4

	var turn float64
	if k := (w.cfg.TrackWidthMM + w.cfg.WheelBaseMM) / 2; k > 0 {
		turn = arc / k
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	mid := w.pose.Heading + turn/2
	w.pose.X += forward*math.Cos(mid) - strafe*math.Sin(mid)
	w.pose.Y += forward*math.Sin(mid) + strafe*math.Cos(mid)
	w.pose.Heading = wrapRadians(w.pose.Heading + turn)
	w.steps++
}

// Detections implements ports.LandmarkDetector from field geometry.
func (w *World) Detections() []domain.Detection {
	pose := w.CurrentPose()

	var out []domain.Detection
	for _, lm := range w.cfg.Landmarks {
		dx := lm.X - pose.X
		dy := lm.Y - pose.Y
		dist := math.Hypot(dx, dy)
		if w.cfg.CameraRangeMM > 0 && dist > w.cfg.CameraRangeMM {
			continue
		}
		bearing := motion.NormalizeDegrees(degrees(math.Atan2(dy, dx) - pose.Heading))
		if w.cfg.CameraFOVDeg > 0 && math.Abs(bearing) > w.cfg.CameraFOVDeg/2 {
			continue
		}
		out = append(out, domain.Detection{
			ID:      lm.ID,
			Range:   dist,
			Bearing: bearing,
			Yaw:     motion.NormalizeDegrees(degrees(lm.Facing + math.Pi - pose.Heading)),
		})
	}
	return out
}

// Run steps the world at interval until ctx is cancelled.
func (w *World) Run(ctx context.Context, interval time.Duration) error {
	return pacer.Loop(ctx, interval, func(context.Context) bool {
		w.Step()
		return true
	})
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func wrapRadians(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
