package domain

// LaneStatus is a point-in-time view of one lane worker.
type LaneStatus struct {
	Name     string         `json:"name"`
	Current  string         `json:"current,omitempty"`
	Queued   int            `json:"queued"`
	Outcomes map[string]int `json:"outcomes"`
}

// Idle reports whether the lane has neither a current nor a queued command.
func (s LaneStatus) Idle() bool {
	return s.Current == "" && s.Queued == 0
}

// StageStatus is a point-in-time view of one plan stage.
type StageStatus struct {
	Title     string `json:"title"`
	Queued    bool   `json:"queued"`
	Reached   bool   `json:"reached"`
	Primary   int    `json:"primary"`
	Secondary int    `json:"secondary"`
	Aux       int    `json:"aux"`
}

// PlanStatus summarises a plan's progress.
type PlanStatus struct {
	Active   string        `json:"active,omitempty"`
	Complete bool          `json:"complete"`
	Halted   bool          `json:"halted"`
	Stages   []StageStatus `json:"stages"`
}
