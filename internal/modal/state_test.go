package modal

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := New(0.01, 0.05)
	if s.Units != MM {
		t.Errorf("expected MM, got %v", s.Units)
	}
	if s.DistanceMode != Absolute {
		t.Errorf("expected Absolute, got %v", s.DistanceMode)
	}
	if s.Plane != PlaneXY {
		t.Errorf("expected PlaneXY, got %v", s.Plane)
	}
	if s.MotionMode != MotionRapid {
		t.Errorf("expected MotionRapid, got %v", s.MotionMode)
	}
	if s.ArcToleranceMM != 0.01 || s.MaxSegmentTimeS != 0.05 {
		t.Errorf("expected tolerances to carry through, got %+v", s)
	}
}

func TestStringers(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"units mm", MM.String(), "mm"},
		{"units inch", Inch.String(), "inch"},
		{"distance absolute", Absolute.String(), "absolute"},
		{"distance incremental", Incremental.String(), "incremental"},
		{"plane xy", PlaneXY.String(), "XY"},
		{"plane xz", PlaneXZ.String(), "XZ"},
		{"plane yz", PlaneYZ.String(), "YZ"},
		{"motion rapid", MotionRapid.String(), "rapid"},
		{"motion linear", MotionLinear.String(), "linear"},
		{"motion arc cw", MotionArcCW.String(), "arc_cw"},
		{"motion arc ccw", MotionArcCCW.String(), "arc_ccw"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}
}
