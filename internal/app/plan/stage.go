// Package plan groups commands into stages and gates the autonomous routine
// so only one stage is in flight at a time.
package plan

import (
	"github.com/jsamuelsen11/go-autonomy/internal/app/command"
	"github.com/jsamuelsen11/go-autonomy/internal/app/lane"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

// Dispatcher accepts commands for execution. *lane.Lane satisfies it.
type Dispatcher interface {
	Enqueue(cmd command.Command) *lane.Ticket
}

// Stage is a labeled group of commands. The primary list gates progress; the
// secondary and aux lists run alongside it and are never waited on.
type Stage struct {
	title     string
	primary   []command.Command
	secondary []command.Command
	aux       []command.Command

	queued  bool
	tickets []*lane.Ticket
}

// NewStage returns an empty stage.
func NewStage(title string) *Stage {
	return &Stage{title: title}
}

// Title returns the stage label.
func (s *Stage) Title() string { return s.title }

// AddPrimary appends commands to the gating list.
func (s *Stage) AddPrimary(cmds ...command.Command) *Stage {
	s.primary = append(s.primary, cmds...)
	return s
}

// AddSecondary appends commands that run concurrently with the primary list.
func (s *Stage) AddSecondary(cmds ...command.Command) *Stage {
	s.secondary = append(s.secondary, cmds...)
	return s
}

// AddAux appends non-gating commands for the aux lane.
func (s *Stage) AddAux(cmds ...command.Command) *Stage {
	s.aux = append(s.aux, cmds...)
	return s
}

// Primary returns the gating commands.
func (s *Stage) Primary() []command.Command { return s.primary }

// Secondary returns the non-gating commands.
func (s *Stage) Secondary() []command.Command { return s.secondary }

// Aux returns the commands bound for the aux lane.
func (s *Stage) Aux() []command.Command { return s.aux }

// Queue dispatches every list in order, each to its own lane. Calling it
// again has no effect.
func (s *Stage) Queue(primary, secondary, aux Dispatcher) {
	if s.queued {
		return
	}
	for _, cmd := range s.primary {
		s.tickets = append(s.tickets, primary.Enqueue(cmd))
	}
	for _, cmd := range s.secondary {
		secondary.Enqueue(cmd)
	}
	for _, cmd := range s.aux {
		aux.Enqueue(cmd)
	}
	s.queued = true
}

// Queued reports whether the stage has been dispatched.
func (s *Stage) Queued() bool { return s.queued }

// IsReached reports whether the stage was dispatched and every primary
// command has left its lane, whatever the outcome.
func (s *Stage) IsReached() bool {
	if !s.queued {
		return false
	}
	for _, t := range s.tickets {
		if !t.Done() {
			return false
		}
	}
	return true
}

// Status returns a snapshot for the control API.
func (s *Stage) Status() domain.StageStatus {
	return domain.StageStatus{
		Title:     s.title,
		Queued:    s.queued,
		Reached:   s.IsReached(),
		Primary:   len(s.primary),
		Secondary: len(s.secondary),
		Aux:       len(s.aux),
	}
}
