package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColor(3, 2, '*', ColorOrange)

	c := s.GetCell(3, 2)
	if c.Rune != '*' || c.Color != ColorOrange {
		t.Errorf("GetCell() = %+v, expected '*' in orange", c)
	}
	if s.Get(3, 2) != '*' {
		t.Errorf("Get() = %q, expected '*'", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads are blank
	s.SetColor(-1, 0, 'x', ColorRed)
	s.SetColor(10, 0, 'x', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out-of-bounds reads should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), '#', ColorRed)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear should blank the screen, got %q", s.String())
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "GAME", ColorWhite)

	if got := s.Row(1); got != "        GAME        " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorWhite {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "★x2")

	if s.Get(0, 0) != '★' || s.Get(1, 0) != 'x' || s.Get(2, 0) != '2' {
		t.Errorf("multibyte text should advance one cell per rune, got %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorGray)

	want := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" └───┘    ",
		"          ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '▀', ColorIce)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 1); c.Rune != '▀' || c.Color != ColorIce {
			t.Errorf("DrawHLine: got %+v at (%d, 1)", c, x)
		}
	}
	if s.Get(7, 1) != ' ' {
		t.Error("DrawHLine should stop at its length")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(1, 1, 'A', ColorGreen)
	s.SetColor(4, 4, 'B', ColorGreen)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'A' || c.Color != ColorGreen {
		t.Errorf("Resize should preserve content, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content clipped by a shrink should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
}
