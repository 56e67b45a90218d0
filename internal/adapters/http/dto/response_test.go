package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/go-autonomy/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-autonomy/internal/domain"
)

func TestToPlanResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		plan        domain.PlanStatus
		wantReached int
		wantTotal   int
		wantActive  string
	}{
		{
			name: "counts reached stages",
			plan: domain.PlanStatus{
				Active: "Drive to basket",
				Stages: []domain.StageStatus{
					{Title: "Initial wait", Queued: true, Reached: true},
					{Title: "Drive to basket", Queued: true, Primary: 1, Secondary: 1},
					{Title: "Score", Primary: 2},
				},
			},
			wantReached: 1,
			wantTotal:   3,
			wantActive:  "Drive to basket",
		},
		{
			name:        "empty plan",
			plan:        domain.PlanStatus{Complete: true},
			wantReached: 0,
			wantTotal:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToPlanResponse(tt.plan)
			if got.Reached != tt.wantReached {
				t.Errorf("Reached = %d, want %d", got.Reached, tt.wantReached)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
			if got.Active != tt.wantActive {
				t.Errorf("Active = %q, want %q", got.Active, tt.wantActive)
			}
			if got.Stages == nil {
				t.Error("Stages = nil, want non-nil slice")
			}
		})
	}
}

func TestToPlanResponse_StageFields(t *testing.T) {
	t.Parallel()

	got := dto.ToPlanResponse(domain.PlanStatus{Stages: []domain.StageStatus{
		{Title: "Score", Queued: true, Primary: 2, Secondary: 1, Aux: 1},
	}, Halted: true})

	s := got.Stages[0]
	if s.Title != "Score" || !s.Queued || s.Reached {
		t.Errorf("stage = %+v, want queued unreached Score", s)
	}
	if s.Primary != 2 || s.Secondary != 1 {
		t.Errorf("Primary, Secondary = %d, %d, want 2, 1", s.Primary, s.Secondary)
	}
	if s.Aux != 1 {
		t.Errorf("Aux = %d, want 1", s.Aux)
	}
	if !got.Halted {
		t.Error("Halted = false, want true")
	}
}

func TestToLaneListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToLaneListResponse([]domain.LaneStatus{
		{Name: "drive", Current: "Drive 600mm", Queued: 1, Outcomes: map[string]int{"complete": 3}},
		{Name: "arm"},
	})

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Lanes[0].Name != "arm" {
		t.Errorf("Lanes[0].Name = %q, want %q", got.Lanes[0].Name, "arm")
	}
	if !got.Lanes[0].Idle {
		t.Error("arm lane Idle = false, want true")
	}
	if got.Lanes[0].Outcomes == nil {
		t.Error("arm lane Outcomes = nil, want empty map")
	}
	if got.Lanes[1].Idle {
		t.Error("drive lane Idle = true, want false")
	}
	if got.Lanes[1].Outcomes["complete"] != 3 {
		t.Errorf("drive Outcomes[complete] = %d, want 3", got.Lanes[1].Outcomes["complete"])
	}
}

func TestPlanResponse_JSONKeys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToPlanResponse(domain.PlanStatus{
		Stages: []domain.StageStatus{{Title: "Initial wait"}},
	}))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	for _, key := range []string{"complete", "halted", "reached", "total", "stages"} {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
	if _, ok := m["active"]; ok {
		t.Error("JSON has key \"active\", want omitted when empty")
	}
}
