package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '*', ColorOrange)

	cell := s.GetCell(3, 4)
	if cell.Rune != '*' {
		t.Errorf("GetCell rune = %q, expected '*'", cell.Rune)
	}
	if cell.Color != ColorOrange {
		t.Errorf("GetCell color = %v, expected orange", cell.Color)
	}

	// Out of bounds cells read as default spaces
	if got := s.GetCell(-1, -1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Get(2, 2) != 'A' {
		t.Error("Resize lost content inside the new bounds")
	}
	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("Resize dimensions = %dx%d, expected 5x5", s.Width(), s.Height())
	}

	s.Resize(20, 20)
	if s.Get(2, 2) != 'A' {
		t.Error("Growing resize lost content")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Cell dropped by shrink should not reappear")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", got)
	}

	// Clipping at the right edge must not panic
	s.DrawText(18, 2, "clip me")
	if s.Get(19, 2) != 'c' {
		t.Errorf("clipped text wrong: %q", s.Get(19, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("box top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
