package command

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

// MissingLandmarkPolicy decides what AlignToLandmark does on a tick where the
// landmark is not visible.
type MissingLandmarkPolicy string

const (
	// PolicyArrive treats a missing landmark as arrived.
	PolicyArrive MissingLandmarkPolicy = "arrive"
	// PolicyHold stops and keeps looking until the command times out.
	PolicyHold MissingLandmarkPolicy = "hold"
	// PolicyFail fails the command with domain.ErrLandmarkNotFound.
	PolicyFail MissingLandmarkPolicy = "fail"
)

// ParseMissingLandmarkPolicy validates a policy name.
func ParseMissingLandmarkPolicy(s string) (MissingLandmarkPolicy, error) {
	switch p := MissingLandmarkPolicy(s); p {
	case PolicyArrive, PolicyHold, PolicyFail:
		return p, nil
	default:
		return "", fmt.Errorf("unknown missing landmark policy %q", s)
	}
}

func visible(env Env, id int) (domain.Detection, bool) {
	if env.Detector == nil {
		return domain.Detection{}, false
	}
	return domain.FindDetection(env.Detector.Detections(), id)
}

// DriveUntilLandmarkParams configures a drive that stops early on sighting.
type DriveUntilLandmarkParams struct {
	DriveParams
	LandmarkID int
}

// DriveUntilLandmark drives like DriveForDistance but completes as soon as
// the landmark comes into view. The distance is the budget if it never does.
type DriveUntilLandmark struct {
	*DriveForDistance
	landmark int
	sighted  bool
}

// NewDriveUntilLandmark creates a DriveUntilLandmark. A landmark id of
// domain.AnyLandmark stops on any sighting.
func NewDriveUntilLandmark(env Env, dt *subsystem.Drivetrain, p DriveUntilLandmarkParams) *DriveUntilLandmark {
	if p.Title == "" {
		p.Title = fmt.Sprintf("drive up to %.0fmm until %s", p.DistanceMM, landmarkLabel(p.LandmarkID))
	}
	return &DriveUntilLandmark{
		DriveForDistance: NewDriveForDistance(env, dt, p.DriveParams),
		landmark:         p.LandmarkID,
	}
}

// Sighted reports whether the command ended because the landmark was seen.
func (c *DriveUntilLandmark) Sighted() bool { return c.sighted }

// LandmarkID returns the landmark the drive watches for.
func (c *DriveUntilLandmark) LandmarkID() int { return c.landmark }

func landmarkLabel(id int) string {
	if id == domain.AnyLandmark {
		return "any landmark"
	}
	return fmt.Sprintf("landmark %d", id)
}

func (c *DriveUntilLandmark) Poll(ctx context.Context) (bool, error) {
	if _, ok := visible(c.env, c.landmark); ok {
		c.sighted = true
		if err := c.drivetrain.Stop(); err != nil {
			return false, err
		}
		return true, nil
	}
	return c.DriveForDistance.Poll(ctx)
}

// Direction is a sideways direction.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Left, Right:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// StrafeToLandmarkParams configures a strafe that ends on sighting.
type StrafeToLandmarkParams struct {
	Title      string
	LandmarkID int
	Direction  Direction
	Speed      float64
	Timeout    time.Duration
}

// StrafeToLandmark strafes until the matching landmark is in view. It has no
// distance budget; the timeout bounds it.
type StrafeToLandmark struct {
	Base
	env        Env
	drivetrain *subsystem.Drivetrain
	landmark   int
	direction  Direction
	speed      float64
}

// NewStrafeToLandmark creates a StrafeToLandmark.
func NewStrafeToLandmark(env Env, dt *subsystem.Drivetrain, p StrafeToLandmarkParams) *StrafeToLandmark {
	if p.Title == "" {
		p.Title = fmt.Sprintf("strafe %s to %s", p.Direction, landmarkLabel(p.LandmarkID))
	}
	return &StrafeToLandmark{
		Base:       newBase(env, p.Title, p.Timeout),
		env:        env,
		drivetrain: dt,
		landmark:   p.LandmarkID,
		direction:  p.Direction,
		speed:      p.Speed,
	}
}

func (c *StrafeToLandmark) Start(_ context.Context) error {
	c.begin()
	if err := c.drivetrain.Stop(); err != nil {
		return err
	}
	dir := math.Pi / 2
	if c.direction == Left {
		dir = -dir
	}
	return c.drivetrain.SetPowers(motion.MixPolar(dir, c.speed, 0))
}

func (c *StrafeToLandmark) Poll(_ context.Context) (bool, error) {
	if _, ok := visible(c.env, c.landmark); !ok {
		return false, nil
	}
	if err := c.drivetrain.Stop(); err != nil {
		return false, err
	}
	return true, nil
}

func (c *StrafeToLandmark) Abort(_ context.Context) error {
	return c.drivetrain.Stop()
}

// AlignParams configures a landmark alignment. StandoffMM is the range to
// hold from the landmark. An empty Policy uses the tuned default.
type AlignParams struct {
	Title      string
	LandmarkID int
	StandoffMM float64
	Policy     MissingLandmarkPolicy
	Timeout    time.Duration
}

// AlignToLandmark closes range, bearing and yaw to a landmark with the
// alignment law, one sample per tick.
type AlignToLandmark struct {
	Base
	env        Env
	drivetrain *subsystem.Drivetrain
	landmark   int
	standoff   float64
	policy     MissingLandmarkPolicy
	stopped    bool
}

// NewAlignToLandmark creates an AlignToLandmark.
func NewAlignToLandmark(env Env, dt *subsystem.Drivetrain, p AlignParams) *AlignToLandmark {
	if p.Title == "" {
		p.Title = fmt.Sprintf("align to landmark %d", p.LandmarkID)
	}
	policy := p.Policy
	if policy == "" {
		policy = env.Tuning.MissingLandmark
	}
	if policy == "" {
		policy = PolicyArrive
	}
	return &AlignToLandmark{
		Base:       newBase(env, p.Title, p.Timeout),
		env:        env,
		drivetrain: dt,
		landmark:   p.LandmarkID,
		standoff:   p.StandoffMM,
		policy:     policy,
	}
}

// Policy returns the effective missing-landmark policy.
func (c *AlignToLandmark) Policy() MissingLandmarkPolicy { return c.policy }

// LandmarkID returns the landmark aligned to.
func (c *AlignToLandmark) LandmarkID() int { return c.landmark }

func (c *AlignToLandmark) Start(_ context.Context) error {
	c.begin()
	return c.stop()
}

func (c *AlignToLandmark) stop() error {
	if c.stopped {
		return nil
	}
	if err := c.drivetrain.Stop(); err != nil {
		return err
	}
	c.stopped = true
	return nil
}

func (c *AlignToLandmark) Poll(_ context.Context) (bool, error) {
	det, ok := visible(c.env, c.landmark)
	if !ok {
		return c.missing()
	}

	e := motion.AlignError{
		Range:   det.Range - c.standoff,
		Bearing: det.Bearing,
		Yaw:     det.Yaw,
	}
	if math.IsNaN(e.Range) || math.IsNaN(e.Bearing) || math.IsNaN(e.Yaw) {
		c.logger.Warn("skipping alignment sample, invalid detection",
			slog.Int("landmark", det.ID),
		)
		return false, nil
	}

	out := motion.Align(e, c.env.Tuning.AlignGains, c.env.Tuning.AlignTolerance)
	if out.Arrived {
		if err := c.drivetrain.Stop(); err != nil {
			return false, err
		}
		c.stopped = true
		return true, nil
	}

	c.stopped = false
	return false, c.drivetrain.SetPowers(motion.Mix(out.Drive, out.Strafe, out.Turn))
}

func (c *AlignToLandmark) missing() (bool, error) {
	if err := c.stop(); err != nil {
		return false, err
	}
	switch c.policy {
	case PolicyHold:
		return false, nil
	case PolicyFail:
		return false, fmt.Errorf("%s: landmark %d: %w", c.title, c.landmark, domain.ErrLandmarkNotFound)
	default:
		c.logger.Info("landmark not in view, treating as arrived",
			slog.Int("landmark", c.landmark),
		)
		return true, nil
	}
}

func (c *AlignToLandmark) Abort(_ context.Context) error {
	c.stopped = true
	return c.drivetrain.Stop()
}
