package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
	// Swapped bounds.
	if got := Clamp(42, 10, 0); got != 10 {
		t.Errorf("Clamp(42,10,0) = %d", got)
	}
	if got := Clamp(int32(700), 0, 1000); got != 700 {
		t.Errorf("Clamp int32 = %d", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("integer Abs")
	}
	if Abs(-0.25) != 0.25 || Abs(0.25) != 0.25 {
		t.Error("float Abs")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max")
	}
	if Min(3.5, 1.5) != 1.5 || Max(3.5, 1.5) != 3.5 {
		t.Error("float Min/Max")
	}
}
