package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	expected := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != expected {
		t.Errorf("String() = %q, expected blank rows", s.String())
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(5, 3)
	points := [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}, {99, 99}}

	for _, p := range points {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' || got.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank default cell", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("out-of-bounds write reached the buffer")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		row      int
		expected string
	}{
		{
			name:     "plain",
			draw:     func(s *Screen) { s.DrawText(1, 0, "SCORE") },
			expected: " SCORE    ",
		},
		{
			name:     "clipped right",
			draw:     func(s *Screen) { s.DrawText(7, 0, "LV 12") },
			expected: "       LV ",
		},
		{
			name:     "clipped left",
			draw:     func(s *Screen) { s.DrawText(-2, 0, "HP 80") },
			expected: " 80       ",
		},
		{
			name:     "centered",
			draw:     func(s *Screen) { s.DrawTextCentered(1, "GO") },
			row:      1,
			expected: "    GO    ",
		},
		{
			name:     "multibyte runes take one cell",
			draw:     func(s *Screen) { s.DrawText(0, 0, "•-•") },
			expected: "•-•       ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 2)
			tt.draw(s)
			if got := s.Row(tt.row); got != tt.expected {
				t.Errorf("Row(%d) = %q, expected %q", tt.row, got, tt.expected)
			}
		})
	}
}

func TestScreenColoredText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(2, 1, "HP", ColorBrightGreen)

	for x, expected := range []Color{ColorDefault, ColorDefault, ColorBrightGreen, ColorBrightGreen, ColorDefault} {
		if got := s.GetCell(x, 1).Color; got != expected {
			t.Errorf("color at (%d, 1) = %v, expected %v", x, got, expected)
		}
	}

	s.Clear()
	if s.GetCell(2, 1) != (Cell{Rune: ' '}) {
		t.Error("Clear() kept a colored cell")
	}
}

func TestScreenMessageBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.Fill('.')

	box := NewRect(1, 1, 6, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawText(2, 2, "OK")

	expected := []string{
		"........",
		".┌────┐.",
		".│OK  │.",
		".└────┘.",
		"........",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 10, '=')
	if got := s.Row(0); got != " =====" {
		t.Errorf("Row(0) = %q, expected %q", got, " =====")
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ABCD")
	s.DrawText(0, 1, "EFGH")

	s.Resize(6, 1)
	if s.Width() != 6 || s.Height() != 1 {
		t.Fatalf("size = %dx%d, expected 6x1", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "ABCD  " {
		t.Errorf("Row(0) after grow = %q, expected %q", got, "ABCD  ")
	}

	s.Resize(2, 3)
	if got := s.String(); got != "AB\n  \n  " {
		t.Errorf("String() after shrink = %q, expected %q", got, "AB\n  \n  ")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank", got)
	}
}
