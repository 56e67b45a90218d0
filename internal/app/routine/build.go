package routine

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/plan"
	"github.com/jsamuelsen11/go-autonomy/internal/app/robot"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

// InitialWaitTitle names the stage every routine starts with.
const InitialWaitTitle = "Initial wait"

// Defaults fill in fields a command spec leaves out.
type Defaults struct {
	DriveSpeed float64
	TurnSpeed  float64
	StartDelay time.Duration
}

// Routine is a built, ready-to-run plan.
type Routine struct {
	Name   string
	Stages []*plan.Stage

	// InitialWait is the start delay. Its duration may be changed until the
	// plan starts.
	InitialWait *command.Wait
}

// Build turns def into plan stages bound to r. Every invalid field is
// reported in a single domain.ValidationError.
func Build(def *Definition, r *robot.Robot, d Defaults) (*Routine, error) {
	verr := &domain.ValidationError{}
	if def == nil {
		verr.Add("routine", "is required")
		return nil, verr
	}
	if d.StartDelay < 0 {
		verr.Add("start_delay", "must not be negative")
	}

	b := builder{robot: r, env: r.Env(), defaults: d, verr: verr}

	initial := command.NewWait(b.env, "Start delay", d.StartDelay)
	stages := []*plan.Stage{plan.NewStage(InitialWaitTitle).AddPrimary(initial)}

	for i, ss := range def.Stages {
		field := fmt.Sprintf("stages[%d]", i)
		title := ss.Title
		if title == "" {
			title = fmt.Sprintf("Stage %d", i+1)
		}
		if len(ss.Primary) == 0 && len(ss.Secondary) == 0 && len(ss.Aux) == 0 {
			verr.Add(field, "has no commands")
		}

		st := plan.NewStage(title)
		for j, cs := range ss.Primary {
			if cmd := b.command(fmt.Sprintf("%s.primary[%d]", field, j), robot.LaneDrive, cs); cmd != nil {
				st.AddPrimary(cmd)
			}
		}
		for j, cs := range ss.Secondary {
			if cmd := b.command(fmt.Sprintf("%s.secondary[%d]", field, j), robot.LaneArm, cs); cmd != nil {
				st.AddSecondary(cmd)
			}
		}
		for j, cs := range ss.Aux {
			if cmd := b.command(fmt.Sprintf("%s.aux[%d]", field, j), robot.LaneAux, cs); cmd != nil {
				st.AddAux(cmd)
			}
		}
		stages = append(stages, st)
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &Routine{Name: def.Name, Stages: stages, InitialWait: initial}, nil
}

type builder struct {
	robot    *robot.Robot
	env      command.Env
	defaults Defaults
	verr     *domain.ValidationError
}

func (b *builder) fail(field, msg string) {
	b.verr.Add(field, msg)
}

// ownerLane names the lane that owns the actuator a command type drives.
// Wait drives nothing and may go on any lane.
func ownerLane(typ string) string {
	switch typ {
	case TypeDrive, TypeStrafe, TypeTurn, TypeTurnForTime,
		TypeDriveUntilLandmark, TypeStrafeToLandmark, TypeAlignToLandmark:
		return robot.LaneDrive
	case TypeMoveArm, TypeClaw:
		return robot.LaneArm
	case TypeIntake:
		return robot.LaneAux
	default:
		return ""
	}
}

func (b *builder) command(field, laneName string, cs CommandSpec) command.Command {
	if cs.Timeout < 0 {
		b.fail(field+".timeout", "must not be negative")
	}
	if owner := ownerLane(cs.Type); owner != "" && owner != laneName {
		b.fail(field+".type", fmt.Sprintf("%s runs on the %s lane, not %s", cs.Type, owner, laneName))
		return nil
	}

	switch cs.Type {
	case TypeWait:
		if cs.Duration < 0 {
			b.fail(field+".duration", "must not be negative")
		}
		return command.NewWait(b.env, cs.Title, cs.Duration)

	case TypeDrive:
		p, ok := b.driveParams(field, cs)
		if !ok {
			return nil
		}
		return command.NewDriveForDistance(b.env, b.robot.Drivetrain(), p)

	case TypeStrafe:
		p, ok := b.driveParams(field, cs)
		if !ok {
			return nil
		}
		return command.NewStrafe(b.env, b.robot.Drivetrain(), command.StrafeParams(p))

	case TypeDriveUntilLandmark:
		p, ok := b.driveParams(field, cs)
		id, idOK := b.landmark(field, cs, true)
		if !ok || !idOK {
			return nil
		}
		return command.NewDriveUntilLandmark(b.env, b.robot.Drivetrain(),
			command.DriveUntilLandmarkParams{DriveParams: p, LandmarkID: id})

	case TypeTurn:
		speed, ok := b.speed(field, cs, b.defaults.TurnSpeed)
		if cs.HeadingDeg == nil {
			b.fail(field+".heading_deg", "is required")
			return nil
		}
		if !ok {
			return nil
		}
		return command.NewTurnToHeading(b.env, b.robot.Drivetrain(), command.TurnParams{
			Title: cs.Title, HeadingDeg: *cs.HeadingDeg, Relative: cs.Relative, Speed: speed, Timeout: cs.Timeout,
		})

	case TypeTurnForTime:
		left, lok := b.power(field+".left", cs.Left)
		right, rok := b.power(field+".right", cs.Right)
		if cs.Duration <= 0 {
			b.fail(field+".duration", "must be positive")
			return nil
		}
		if !lok || !rok {
			return nil
		}
		return command.NewTurnForTime(b.env, b.robot.Drivetrain(), command.TurnForTimeParams{
			Title: cs.Title, Left: left, Right: right, Duration: cs.Duration, Timeout: cs.Timeout,
		})

	case TypeStrafeToLandmark:
		id, idOK := b.landmark(field, cs, true)
		speed, speedOK := b.speed(field, cs, b.defaults.DriveSpeed)
		dir, err := command.ParseDirection(cs.Direction)
		if err != nil {
			b.fail(field+".direction", err.Error())
			return nil
		}
		if !idOK || !speedOK {
			return nil
		}
		return command.NewStrafeToLandmark(b.env, b.robot.Drivetrain(), command.StrafeToLandmarkParams{
			Title: cs.Title, LandmarkID: id, Direction: dir, Speed: speed, Timeout: cs.Timeout,
		})

	case TypeAlignToLandmark:
		id, idOK := b.landmark(field, cs, false)
		var policy command.MissingLandmarkPolicy
		if cs.Policy != "" {
			p, err := command.ParseMissingLandmarkPolicy(cs.Policy)
			if err != nil {
				b.fail(field+".policy", err.Error())
				return nil
			}
			policy = p
		}
		if cs.OffsetMM == nil || *cs.OffsetMM <= 0 {
			b.fail(field+".offset_mm", "must be positive")
			return nil
		}
		if !idOK {
			return nil
		}
		return command.NewAlignToLandmark(b.env, b.robot.Drivetrain(), command.AlignParams{
			Title: cs.Title, LandmarkID: id, StandoffMM: *cs.OffsetMM, Policy: policy, Timeout: cs.Timeout,
		})

	case TypeMoveArm:
		preset, ok := b.robot.Preset(cs.Preset)
		if !ok {
			b.fail(field+".preset", fmt.Sprintf("unknown preset %q", cs.Preset))
			return nil
		}
		return command.NewMoveArm(b.env, b.robot.Arm(), cs.Title, preset, cs.Timeout)

	case TypeClaw:
		if cs.Claw == nil || *cs.Claw < 0 || *cs.Claw > 1 {
			b.fail(field+".claw", "must be between 0 and 1")
			return nil
		}
		return command.NewClaw(b.env, b.robot.Arm(), cs.Title, *cs.Claw, cs.Timeout)

	case TypeIntake:
		mode, err := command.ParseIntakeMode(cs.Mode)
		if err != nil {
			b.fail(field+".mode", err.Error())
			return nil
		}
		return command.NewIntake(b.env, b.robot.Intake(), cs.Title, mode, cs.Timeout)

	case "":
		b.fail(field+".type", "is required")
	default:
		b.fail(field+".type", fmt.Sprintf("unknown command type %q", cs.Type))
	}
	return nil
}

func (b *builder) driveParams(field string, cs CommandSpec) (command.DriveParams, bool) {
	speed, ok := b.speed(field, cs, b.defaults.DriveSpeed)
	if cs.DistanceMM == nil || *cs.DistanceMM == 0 {
		b.fail(field+".distance_mm", "must be non-zero")
		ok = false
	}
	if !ok {
		return command.DriveParams{}, false
	}

	var heading command.Heading
	switch {
	case cs.HeadingDeg != nil:
		heading = command.HoldHeading(*cs.HeadingDeg)
	case cs.HoldHeading:
		heading = command.HoldStartHeading()
	}
	return command.DriveParams{
		Title:      cs.Title,
		DistanceMM: *cs.DistanceMM,
		Speed:      speed,
		Heading:    heading,
		Timeout:    cs.Timeout,
	}, true
}

func (b *builder) speed(field string, cs CommandSpec, def float64) (float64, bool) {
	speed := def
	if cs.Speed != nil {
		speed = *cs.Speed
	}
	if speed <= 0 || speed > 1 {
		b.fail(field+".speed", "must be in (0, 1]")
		return 0, false
	}
	return speed, true
}

func (b *builder) power(field string, v *float64) (float64, bool) {
	if v == nil {
		b.fail(field, "is required")
		return 0, false
	}
	if *v < -1 || *v > 1 {
		b.fail(field, "must be in [-1, 1]")
		return 0, false
	}
	return *v, true
}

// landmark validates landmark_id. Zero is a real tag. When anyAllowed, an
// absent id means domain.AnyLandmark.
func (b *builder) landmark(field string, cs CommandSpec, anyAllowed bool) (int, bool) {
	switch {
	case cs.LandmarkID == nil && anyAllowed:
		return domain.AnyLandmark, true
	case cs.LandmarkID == nil:
		b.fail(field+".landmark_id", "is required")
	case *cs.LandmarkID < 0:
		b.fail(field+".landmark_id", "must not be negative")
	default:
		return *cs.LandmarkID, true
	}
	return 0, false
}
