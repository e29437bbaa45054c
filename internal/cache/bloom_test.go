package cache

import "testing"

func TestCaseFilter_Seen(t *testing.T) {
	f := NewCaseFilter(1000, 0.001)

	if f.Seen("W.P 1/2024|01-01-2024") {
		t.Error("fresh key reported as seen")
	}
	if !f.Seen("W.P 1/2024|01-01-2024") {
		t.Error("repeated key not reported as seen")
	}
	if f.Seen("W.P 1/2024|02-01-2024") {
		t.Error("different date reported as seen")
	}
}

func TestCaseFilter_Clear(t *testing.T) {
	f := NewCaseFilter(1000, 0.001)
	f.Seen("a")
	f.Seen("b")

	if f.Count() == 0 {
		t.Error("expected non-zero count after adds")
	}

	f.Clear()
	if f.Seen("a") {
		t.Error("key still present after Clear")
	}
}
