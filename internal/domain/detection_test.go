package domain

import (
	"math"
	"testing"
)

func TestFindDetection(t *testing.T) {
	t.Parallel()

	detections := []Detection{
		{ID: 12, Range: 900},
		{ID: 14, Range: 450},
		{ID: 0, Range: 300},
	}

	tests := []struct {
		name      string
		id        int
		wantFound bool
		wantRange float64
	}{
		{name: "matching id", id: 14, wantFound: true, wantRange: 450},
		{name: "any landmark takes first", id: AnyLandmark, wantFound: true, wantRange: 900},
		{name: "tag zero is a real id", id: 0, wantFound: true, wantRange: 300},
		{name: "missing id", id: 3, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FindDetection(detections, tt.id)
			if ok != tt.wantFound {
				t.Fatalf("FindDetection(%d) found = %v, want %v", tt.id, ok, tt.wantFound)
			}
			if ok && got.Range != tt.wantRange {
				t.Errorf("FindDetection(%d).Range = %v, want %v", tt.id, got.Range, tt.wantRange)
			}
		})
	}
}

func TestFindDetection_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := FindDetection(nil, AnyLandmark); ok {
		t.Error("FindDetection(nil) found = true, want false")
	}
}

func TestPose_Valid(t *testing.T) {
	t.Parallel()

	if !(Pose{X: 1, Y: 2, Heading: math.Pi}).Valid() {
		t.Error("finite pose Valid() = false, want true")
	}
	if (Pose{Heading: math.NaN()}).Valid() {
		t.Error("NaN heading Valid() = true, want false")
	}
	if got := (Pose{Heading: math.Pi / 2}).HeadingDegrees(); math.Abs(got-90) > 1e-9 {
		t.Errorf("HeadingDegrees() = %v, want 90", got)
	}
}
