package internal

import "testing"

func TestFieldLimits(t *testing.T) {
	if MaxBitmapsSize - 1 != int(^uint16(0)) {
		t.Fatalf("expected MaxBitmapsSize to match the uint16 image offset range, got %d", MaxBitmapsSize)
	}
	if MaxCellWidth != 64 {
		t.Fatalf("expected cell rows to fit in 64 bits, got MaxCellWidth = %d", MaxCellWidth)
	}
}

func TestSaturatingAdd(t *testing.T) {
	tests := []struct{ Value, Delta, Expected int }{
		{0, 5, 5}, {5, -2, 3}, {1, -2, -1}, {0, -128, -128},
		{maxInt - 1, 5, maxInt}, {maxInt, 0, maxInt},
		{minInt + 1, -5, minInt}, {minInt, 0, minInt}, {minInt, 3, minInt + 3},
	}
	for _, test := range tests {
		result := SaturatingAdd(test.Value, test.Delta)
		if result != test.Expected {
			t.Fatalf("SaturatingAdd(%d, %d): expected %d, got %d", test.Value, test.Delta, test.Expected, result)
		}
	}
}
