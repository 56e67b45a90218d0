package domain

// AnyLandmark matches every detected landmark id. Tag ids start at zero, so
// the wildcard is negative.
const AnyLandmark = -1

// Detection is one landmark observation in the camera frame.
// Range is in millimetres; Bearing and Yaw are in degrees, counter-clockwise
// positive. Bearing is the angle to the landmark centre, Yaw the rotation of
// the landmark face relative to the camera.
type Detection struct {
	ID      int     `json:"id"`
	Range   float64 `json:"range_mm"`
	Bearing float64 `json:"bearing_deg"`
	Yaw     float64 `json:"yaw_deg"`
}

// FindDetection returns the first detection matching id. AnyLandmark matches
// the first detection in the slice.
func FindDetection(detections []Detection, id int) (Detection, bool) {
	for _, d := range detections {
		if id == AnyLandmark || d.ID == id {
			return d, true
		}
	}
	return Detection{}, false
}
