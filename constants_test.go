package sheetfont

import "testing"

func TestMaxKerningCodePoint(t *testing.T) {
	var entry KerningEntry
	entry.Before = MaxKerningCodePoint
	if rune(entry.Before) != MaxKerningCodePoint {
		t.Fatalf("expected KerningEntry.Before to hold %d, got %d", MaxKerningCodePoint, entry.Before)
	}
}
