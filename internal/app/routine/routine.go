// Package routine loads autonomous routines written in YAML and turns them
// into plan stages.
//
// A routine file looks like:
//
//	name: basket-left
//	stages:
//	  - title: Leave wall
//	    primary:
//	      - type: drive
//	        distance_mm: 600
//	        hold_heading: true
//	    secondary:
//	      - type: move_arm
//	        preset: lower_basket
//	    aux:
//	      - type: intake
//	        mode: hold
//
// Each list runs on the lane that owns its actuators: drive commands in
// primary, arm and claw commands in secondary, intake commands in aux. Wait
// fits any list.
//
// Every built routine starts with an "Initial wait" stage whose duration is
// the adjustable start delay.
package routine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Command types.
const (
	TypeWait               = "wait"
	TypeDrive              = "drive"
	TypeStrafe             = "strafe"
	TypeTurn               = "turn"
	TypeTurnForTime        = "turn_for_time"
	TypeDriveUntilLandmark = "drive_until_landmark"
	TypeStrafeToLandmark   = "strafe_to_landmark"
	TypeAlignToLandmark    = "align_to_landmark"
	TypeMoveArm            = "move_arm"
	TypeClaw               = "claw"
	TypeIntake             = "intake"
)

// Definition is a routine as written on disk.
type Definition struct {
	Name   string      `yaml:"name"`
	Stages []StageSpec `yaml:"stages"`
}

// StageSpec is one stage of a routine. Primary commands run on the drive
// lane and gate the stage; secondary commands run on the arm lane and aux
// commands on the aux lane.
type StageSpec struct {
	Title     string        `yaml:"title"`
	Primary   []CommandSpec `yaml:"primary"`
	Secondary []CommandSpec `yaml:"secondary"`
	Aux       []CommandSpec `yaml:"aux"`
}

// CommandSpec is one command. Which fields apply depends on Type; unset
// numeric fields are pointers so zero can be told apart from absent.
type CommandSpec struct {
	Type    string        `yaml:"type"`
	Title   string        `yaml:"title"`
	Timeout time.Duration `yaml:"timeout"`

	DistanceMM  *float64      `yaml:"distance_mm"`
	HeadingDeg  *float64      `yaml:"heading_deg"`
	HoldHeading bool          `yaml:"hold_heading"`
	Relative    bool          `yaml:"relative"`
	Speed       *float64      `yaml:"speed"`
	Duration    time.Duration `yaml:"duration"`
	LandmarkID  *int          `yaml:"landmark_id"`
	OffsetMM    *float64      `yaml:"offset_mm"`
	Direction   string        `yaml:"direction"`
	Preset      string        `yaml:"preset"`
	Claw        *float64      `yaml:"claw"`
	Policy      string        `yaml:"policy"`
	Left        *float64      `yaml:"left"`
	Right       *float64      `yaml:"right"`
	Mode        string        `yaml:"mode"`
}

// Load reads and parses a routine file.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening routine %s: %w", path, err)
	}
	defer f.Close()

	def, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("routine %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a routine held in memory.
func Parse(data []byte) (*Definition, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a routine from r. Unknown keys are rejected so a typo in a
// field name does not silently fall back to a default.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty routine")
		}
		return nil, fmt.Errorf("decoding routine: %w", err)
	}
	return &def, nil
}
