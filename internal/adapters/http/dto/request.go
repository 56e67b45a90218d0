package dto

import (
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

const (
	msgStickRange   = "must be between -1 and 1"
	msgTriggerRange = "must be between 0 and 1"
)

// GamepadRequest is one controller's state in an input submission.
type GamepadRequest struct {
	LeftStickX   float64 `json:"left_stick_x"`
	LeftStickY   float64 `json:"left_stick_y"`
	RightStickX  float64 `json:"right_stick_x"`
	LeftTrigger  float64 `json:"left_trigger"`
	RightTrigger float64 `json:"right_trigger"`
	A            bool    `json:"a"`
	B            bool    `json:"b"`
	X            bool    `json:"x"`
	Y            bool    `json:"y"`
	DpadLeft     bool    `json:"dpad_left"`
	DpadRight    bool    `json:"dpad_right"`
}

// InputRequest represents the JSON body for PUT /api/v1/input. A missing
// controller reads as released.
type InputRequest struct {
	Driver   GamepadRequest `json:"driver"`
	Operator GamepadRequest `json:"operator"`
}

// Validate checks stick and trigger ranges.
// Returns a *domain.ValidationError if any checks fail.
func (r *InputRequest) Validate() error {
	fields := make(map[string]string)

	r.Driver.validate("driver", fields)
	r.Operator.validate("operator", fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (g *GamepadRequest) validate(prefix string, fields map[string]string) {
	sticks := map[string]float64{
		"left_stick_x":  g.LeftStickX,
		"left_stick_y":  g.LeftStickY,
		"right_stick_x": g.RightStickX,
	}
	for name, v := range sticks {
		if v < -1 || v > 1 {
			fields[prefix+"."+name] = msgStickRange
		}
	}

	triggers := map[string]float64{
		"left_trigger":  g.LeftTrigger,
		"right_trigger": g.RightTrigger,
	}
	for name, v := range triggers {
		if v < 0 || v > 1 {
			fields[prefix+"."+name] = msgTriggerRange
		}
	}
}

// ToDomain converts the request into a domain.InputSnapshot.
func (r *InputRequest) ToDomain() domain.InputSnapshot {
	return domain.InputSnapshot{
		Driver:   r.Driver.toDomain(),
		Operator: r.Operator.toDomain(),
	}
}

func (g *GamepadRequest) toDomain() domain.Gamepad {
	return domain.Gamepad{
		LeftStickX:   g.LeftStickX,
		LeftStickY:   g.LeftStickY,
		RightStickX:  g.RightStickX,
		LeftTrigger:  g.LeftTrigger,
		RightTrigger: g.RightTrigger,
		A:            g.A,
		B:            g.B,
		X:            g.X,
		Y:            g.Y,
		DpadLeft:     g.DpadLeft,
		DpadRight:    g.DpadRight,
	}
}
