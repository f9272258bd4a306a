package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want [2]int
	}{
		{"terminal", 80, 24, [2]int{80, 24}},
		{"negative clamps to empty", -3, -1, [2]int{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.want[0] || s.Height() != tc.want[1] {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.want[0], tc.want[1])
			}
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if c := s.GetCell(x, y); c != blankCell {
						t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestSetCellBounds(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(3, 2, Cell{Rune: '#', Color: ColorObstacle})

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'X'})
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell%v = %+v, expected blank outside the screen", p, c)
		}
	}

	if want := "    \n    \n   #"; s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
	if c := s.GetCell(3, 2); c.Color != ColorObstacle {
		t.Errorf("color = %v, expected obstacle", c.Color)
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "Score", ColorText)

	if got := s.Row(0); got != "     Sco" {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(6, 0); c.Color != ColorText {
		t.Errorf("text color = %v", c.Color)
	}
}

func TestDrawRectAndClear(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewCellRect(1, 1, 2, 2), FillGlyph, ColorPlayer)
	s.DrawHLine(0, 3, 5, GroundGlyph, ColorGround)

	want := "     \n ██  \n ██  \n═════"
	if s.String() != want {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), want)
	}

	s.Clear()
	if s.String() != "     \n     \n     \n     " {
		t.Errorf("Clear left %q", s.String())
	}
}

func TestResizeKeepsContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "Score", ColorText)

	s.Resize(3, 2)
	if s.Row(0) != "Sco" || s.Height() != 2 {
		t.Errorf("after shrink Row(0) = %q, height %d", s.Row(0), s.Height())
	}

	s.Resize(7, 4)
	if s.Row(0) != "Sco    " {
		t.Errorf("after grow Row(0) = %q", s.Row(0))
	}
	if s.Row(3) != "       " {
		t.Errorf("new rows should be blank, got %q", s.Row(3))
	}
	if s.Row(9) != "       " {
		t.Errorf("out-of-range row should be blank, got %q", s.Row(9))
	}
}
