package controls

import "testing"

func TestPadding(t *testing.T) {
	tests := []struct {
		size    int
		pad     int
		aligned int
	}{
		{0, 0, 0},
		{4, 12, 16},
		{12, 4, 16},
		{15, 1, 16},
		{16, 0, 16},
		{17, 15, 32},
		{32, 0, 32},
		{36, 12, 48},
	}

	for _, tt := range tests {
		if got := Padding(tt.size); got != tt.pad {
			t.Errorf("Padding(%d) = %d, want %d", tt.size, got, tt.pad)
		}
		if got := AlignUp(tt.size); got != tt.aligned {
			t.Errorf("AlignUp(%d) = %d, want %d", tt.size, got, tt.aligned)
		}
	}
}

func TestAlignUpLaw(t *testing.T) {
	for size := 0; size <= 4*Alignment*Alignment; size++ {
		aligned := AlignUp(size)
		if aligned%Alignment != 0 {
			t.Fatalf("AlignUp(%d) = %d is not a multiple of %d", size, aligned, Alignment)
		}
		if pad := aligned - size; pad < 0 || pad >= Alignment {
			t.Fatalf("AlignUp(%d) pads %d bytes, want [0,%d)", size, pad, Alignment)
		}
	}
}

func TestLegacyPadding(t *testing.T) {
	if got := legacyPadding(16); got != 16 {
		t.Errorf("legacyPadding(16) = %d, want 16", got)
	}
	if got := legacyPadding(4); got != Padding(4) {
		t.Errorf("legacyPadding(4) = %d, want %d", got, Padding(4))
	}
}
