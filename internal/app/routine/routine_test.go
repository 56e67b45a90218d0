package routine_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/sim"
	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/robot"
	"github.com/jsamuelsen11/go-autonomy/internal/app/routine"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
	"github.com/jsamuelsen11/go-autonomy/internal/motion"
	"github.com/jsamuelsen11/go-autonomy/internal/platform/clock"
	"github.com/jsamuelsen11/go-autonomy/internal/subsystem"
)

var defaults = routine.Defaults{DriveSpeed: 0.6, TurnSpeed: 0.5, StartDelay: 2 * time.Second}

func newRobot(t *testing.T) *robot.Robot {
	t.Helper()

	enc := motion.Encoder{WheelRadiusMM: 50 / math.Pi, GearRatio: 1, TicksPerRev: 200}
	world := sim.NewWorld(sim.Config{Encoder: enc, TicksPerStep: 100, TrackWidthMM: 300, WheelBaseMM: 300})
	r, err := robot.New(robot.Deps{
		Drivetrain: subsystem.NewDrivetrain(world.LeftFront, world.RightFront, world.LeftBack, world.RightBack, 30),
		Arm:        subsystem.NewArm(world.Shoulder, world.Slide, world.Claw, subsystem.ArmConfig{ShoulderPower: 1, SlidePower: 1}),
		Intake:     subsystem.NewIntake(world.Intake, 1, 5),
		Pose:       world,
		Detector:   &sim.Detector{},
		Clock:      clock.Fake(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		Tuning:     command.Tuning{Encoder: enc},
		Presets: map[string]subsystem.ArmPosition{
			robot.PresetIntake:       {Shoulder: 200, Claw: 0.2},
			robot.PresetHigherBasket: {Slide: 900, Shoulder: 900, Claw: 0.2},
		},
	})
	require.NoError(t, err)
	return r
}

func TestLoadAndBuild(t *testing.T) {
	t.Parallel()

	def, err := routine.Load("testdata/basket-left.yaml")
	require.NoError(t, err)
	assert.Equal(t, "basket-left", def.Name)
	require.Len(t, def.Stages, 4)

	rt, err := routine.Build(def, newRobot(t), defaults)
	require.NoError(t, err)

	titles := make([]string, 0, len(rt.Stages))
	for _, st := range rt.Stages {
		titles = append(titles, st.Title())
	}
	assert.Equal(t, []string{routine.InitialWaitTitle, "Leave wall", "Square up", "Score", "Park"}, titles)
	assert.Equal(t, 2*time.Second, rt.InitialWait.Duration())

	leave := rt.Stages[1]
	require.Len(t, leave.Primary(), 2)
	assert.Equal(t, "Clear the wall", leave.Primary()[0].Title())
	assert.IsType(t, &command.Strafe{}, leave.Primary()[0])
	assert.IsType(t, &command.DriveForDistance{}, leave.Primary()[1])
	require.Len(t, leave.Secondary(), 1)
	assert.Equal(t, 4*time.Second, leave.Secondary()[0].Timeout())

	square := rt.Stages[2]
	align, ok := square.Primary()[1].(*command.AlignToLandmark)
	require.True(t, ok)
	assert.Equal(t, command.PolicyArrive, align.Policy())

	score := rt.Stages[3]
	require.Len(t, score.Primary(), 1)
	require.Len(t, score.Aux(), 1)
	assert.IsType(t, &command.Intake{}, score.Aux()[0])

	park := rt.Stages[4]
	assert.IsType(t, &command.DriveUntilLandmark{}, park.Primary()[1])
	assert.IsType(t, &command.Claw{}, park.Secondary()[1])
	assert.IsType(t, &command.Intake{}, park.Aux()[0])
}

func TestBuild_RejectsCommandsOnForeignLane(t *testing.T) {
	t.Parallel()

	src := `
name: crossed
stages:
  - title: mixed
    primary:
      - {type: move_arm, preset: intake}
      - {type: intake, mode: run}
      - {type: wait, duration: 1s}
    secondary:
      - {type: drive, distance_mm: 100}
      - {type: claw, claw: 0.5}
    aux:
      - {type: claw, claw: 0.5}
      - {type: wait, duration: 1s}
`
	def, err := routine.Parse([]byte(src))
	require.NoError(t, err)

	_, err = routine.Build(def, newRobot(t), defaults)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	wantFields := []string{
		"stages[0].primary[0].type",
		"stages[0].primary[1].type",
		"stages[0].secondary[0].type",
		"stages[0].aux[0].type",
	}
	for _, f := range wantFields {
		assert.Contains(t, verr.Fields, f)
	}
	assert.Len(t, verr.Fields, len(wantFields))
}

func TestBuild_InitialWaitAlwaysFirst(t *testing.T) {
	t.Parallel()

	rt, err := routine.Build(&routine.Definition{Name: "empty"}, newRobot(t), routine.Defaults{})
	require.NoError(t, err)

	require.Len(t, rt.Stages, 1)
	assert.Equal(t, routine.InitialWaitTitle, rt.Stages[0].Title())
	assert.Zero(t, rt.InitialWait.Duration())

	rt.InitialWait.SetDuration(3 * time.Second)
	assert.Equal(t, 3*time.Second, rt.InitialWait.Duration())
}

func TestBuild_ValidationErrors(t *testing.T) {
	t.Parallel()

	src := `
name: broken
stages:
  - title: bad
    primary:
      - type: drive
        speed: 2
      - type: fly
      - type: turn_for_time
        left: 0.5
      - type: align_to_landmark
        landmark_id: 4
    secondary:
      - type: move_arm
        preset: nowhere
    aux:
      - type: intake
        mode: chew
  - title: empty
`
	def, err := routine.Parse([]byte(src))
	require.NoError(t, err)

	_, err = routine.Build(def, newRobot(t), defaults)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	wantFields := []string{
		"stages[0].primary[0].speed",
		"stages[0].primary[0].distance_mm",
		"stages[0].primary[1].type",
		"stages[0].primary[2].right",
		"stages[0].primary[2].duration",
		"stages[0].primary[3].offset_mm",
		"stages[0].secondary[0].preset",
		"stages[0].aux[0].mode",
		"stages[1]",
	}
	for _, f := range wantFields {
		assert.Contains(t, verr.Fields, f)
	}
	assert.Len(t, verr.Fields, len(wantFields))
}

func TestBuild_HeadingSelection(t *testing.T) {
	t.Parallel()

	src := `
name: headings
stages:
  - title: s
    primary:
      - {type: drive, distance_mm: 100}
      - {type: drive, distance_mm: 100, hold_heading: true}
      - {type: drive, distance_mm: -100, heading_deg: 90}
      - {type: strafe_to_landmark, direction: left}
      - {type: turn, heading_deg: 30, relative: true}
`
	def, err := routine.Parse([]byte(src))
	require.NoError(t, err)
	rt, err := routine.Build(def, newRobot(t), defaults)
	require.NoError(t, err)
	assert.Len(t, rt.Stages[1].Primary(), 5)
}

func TestBuild_LandmarkIDs(t *testing.T) {
	t.Parallel()

	src := `
name: tags
stages:
  - title: s
    primary:
      - {type: align_to_landmark, landmark_id: 0, offset_mm: 300}
      - {type: drive_until_landmark, distance_mm: 500}
      - {type: strafe_to_landmark, direction: right, landmark_id: -2}
`
	def, err := routine.Parse([]byte(src))
	require.NoError(t, err)

	_, err = routine.Build(def, newRobot(t), defaults)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 1)
	assert.Contains(t, verr.Fields, "stages[0].primary[2].landmark_id")

	def.Stages[0].Primary = def.Stages[0].Primary[:2]
	rt, err := routine.Build(def, newRobot(t), defaults)
	require.NoError(t, err)

	align, ok := rt.Stages[1].Primary()[0].(*command.AlignToLandmark)
	require.True(t, ok)
	assert.Equal(t, 0, align.LandmarkID())
	drive, ok := rt.Stages[1].Primary()[1].(*command.DriveUntilLandmark)
	require.True(t, ok)
	assert.Equal(t, domain.AnyLandmark, drive.LandmarkID())
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := routine.Parse([]byte("name: x\nstages:\n  - title: a\n    primry: []\n"))
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	_, err := routine.Parse(nil)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := routine.Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
