package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:    "down within viewport",
			margin:  1,
			delta:   1,
			len:     10,
			height:  5,
			wantPos: 1,
		},
		{
			name:       "down scrolls once margin reached",
			margin:     1,
			delta:      4,
			len:        10,
			height:     5,
			wantPos:    4,
			wantOffset: 1,
		},
		{
			name:    "up clamps at zero",
			margin:  1,
			delta:   -3,
			len:     10,
			height:  5,
			wantPos: 0,
		},
		{
			name:       "down clamps at end",
			margin:     1,
			initial:    8,
			delta:      5,
			len:        10,
			height:     5,
			wantPos:    9,
			wantOffset: 5,
		},
		{
			name:    "empty list is a no-op",
			margin:  1,
			delta:   3,
			len:     0,
			height:  5,
			wantPos: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 5)
	if !c.ClampToBounds(3) {
		t.Fatal("expected clamp after list shrank")
	}
	if c.Pos() != 2 {
		t.Errorf("pos = %d, want 2", c.Pos())
	}
	if c.ClampToBounds(3) {
		t.Error("second clamp should report no change")
	}
	if c.ClampToBounds(0) != true || c.Pos() != 0 || c.Offset() != 0 {
		t.Error("clamp to empty list should reset")
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(6, 10, 4)
	start, end := c.VisibleRange(10, 4)
	if start > 6 || end <= 6 {
		t.Errorf("selection outside visible range [%d,%d)", start, end)
	}
	if end-start > 4 {
		t.Errorf("range taller than viewport: [%d,%d)", start, end)
	}

	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("empty list range = [%d,%d), want [0,0)", start, end)
	}
}
