package core

import "testing"

func TestViewportFillRect(t *testing.T) {
	s := NewScreen(80, 30)
	// 800x300 field onto 80x30 cells: 10 units per cell both ways.
	v := NewViewport(s, NewCellRect(0, 0, 80, 30), 800, 300)

	v.FillRect(NewRect(50, 250, 40, 40), ColorPlayer)

	for y := 25; y < 29; y++ {
		for x := 5; x < 9; x++ {
			if c := s.GetCell(x, y); c.Rune != FillGlyph || c.Color != ColorPlayer {
				t.Errorf("expected player cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.GetCell(9, 25).Rune != ' ' || s.GetCell(4, 25).Rune != ' ' {
		t.Error("FillRect drew outside the scaled rectangle")
	}
}

func TestViewportClipsOffscreen(t *testing.T) {
	s := NewScreen(80, 30)
	v := NewViewport(s, NewCellRect(0, 2, 80, 20), 800, 300)

	// Partially left of the field: only the visible part is drawn.
	v.FillRect(NewRect(-15, 0, 20, 40), ColorObstacle)
	if s.GetCell(0, 2).Rune != FillGlyph {
		t.Error("visible part of a clipped rect should be drawn")
	}

	// Entirely right of the field.
	v.FillRect(NewRect(800, 0, 20, 40), ColorObstacle)
	for y := 0; y < s.Height(); y++ {
		if s.GetCell(79, y).Rune != ' ' {
			t.Errorf("offscreen rect leaked into column 79 at row %d", y)
		}
	}

	// Nothing above the region is touched.
	if s.GetCell(0, 0).Rune != ' ' || s.GetCell(0, 1).Rune != ' ' {
		t.Error("viewport drew outside its region")
	}
}

func TestViewportHLineAndText(t *testing.T) {
	s := NewScreen(80, 30)
	v := NewViewport(s, NewCellRect(0, 0, 80, 30), 800, 300)

	v.HLine(0, 800, 290, ColorGround)
	for x := 0; x < 80; x++ {
		if s.GetCell(x, 29).Rune != GroundGlyph {
			t.Fatalf("ground line missing at column %d", x)
		}
	}

	v.Text(790, 150, "Game Over", ColorBanner)
	if got := s.Row(15)[71:]; got != "Game Over" {
		t.Errorf("text should be shifted to fit, got %q", got)
	}
}

func TestViewportToField(t *testing.T) {
	s := NewScreen(80, 30)
	v := NewViewport(s, NewCellRect(0, 2, 80, 30), 800, 300)

	fx, fy, ok := v.ToField(5, 27)
	if !ok {
		t.Fatal("cell inside region should map to field")
	}
	if fx != 50 || fy != 250 {
		t.Errorf("ToField = (%v, %v), expected (50, 250)", fx, fy)
	}

	if _, _, ok := v.ToField(5, 1); ok {
		t.Error("cell above region should not map to field")
	}
}
