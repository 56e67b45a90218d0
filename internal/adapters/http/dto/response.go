// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the operator control surface.
package dto

import (
	"sort"

	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

// StageResponse is one plan stage in HTTP responses.
type StageResponse struct {
	Title     string `json:"title"`
	Queued    bool   `json:"queued"`
	Reached   bool   `json:"reached"`
	Primary   int    `json:"primary_commands"`
	Secondary int    `json:"secondary_commands"`
	Aux       int    `json:"aux_commands"`
}

// PlanResponse is the plan progress returned by GET /api/v1/plan.
type PlanResponse struct {
	Active   string          `json:"active,omitempty"`
	Complete bool            `json:"complete"`
	Halted   bool            `json:"halted"`
	Reached  int             `json:"reached"`
	Total    int             `json:"total"`
	Stages   []StageResponse `json:"stages"`
}

// ToPlanResponse converts a domain PlanStatus to an HTTP response DTO.
func ToPlanResponse(p domain.PlanStatus) PlanResponse {
	stages := make([]StageResponse, len(p.Stages))
	reached := 0
	for i, s := range p.Stages {
		stages[i] = StageResponse{
			Title:     s.Title,
			Queued:    s.Queued,
			Reached:   s.Reached,
			Primary:   s.Primary,
			Secondary: s.Secondary,
			Aux:       s.Aux,
		}
		if s.Reached {
			reached++
		}
	}
	return PlanResponse{
		Active:   p.Active,
		Complete: p.Complete,
		Halted:   p.Halted,
		Reached:  reached,
		Total:    len(stages),
		Stages:   stages,
	}
}

// LaneResponse is one lane worker in HTTP responses.
type LaneResponse struct {
	Name     string         `json:"name"`
	Current  string         `json:"current,omitempty"`
	Idle     bool           `json:"idle"`
	Queued   int            `json:"queued"`
	Outcomes map[string]int `json:"outcomes"`
}

// LaneListResponse is returned by GET /api/v1/lanes.
type LaneListResponse struct {
	Lanes []LaneResponse `json:"lanes"`
	Count int            `json:"count"`
}

// ToLaneListResponse converts lane snapshots to an HTTP list response DTO,
// sorted by lane name.
func ToLaneListResponse(lanes []domain.LaneStatus) LaneListResponse {
	items := make([]LaneResponse, len(lanes))
	for i, l := range lanes {
		outcomes := l.Outcomes
		if outcomes == nil {
			outcomes = map[string]int{}
		}
		items[i] = LaneResponse{
			Name:     l.Name,
			Current:  l.Current,
			Idle:     l.Idle(),
			Queued:   l.Queued,
			Outcomes: outcomes,
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return LaneListResponse{Lanes: items, Count: len(items)}
}

// AbortResponse acknowledges an emergency stop.
type AbortResponse struct {
	Status string `json:"status"`
}
