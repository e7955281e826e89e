package conv

import "testing"

func TestIntToUint64(t *testing.T) {
	tests := []struct {
		in   int
		want uint64
	}{
		{0, 0},
		{1, 1},
		{1 << 20, 1 << 20},
	}
	for _, tt := range tests {
		if got := IntToUint64(tt.in); got != tt.want {
			t.Errorf("IntToUint64(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToUint64_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative input")
		}
	}()
	IntToUint64(-1)
}
