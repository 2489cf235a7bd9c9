package terminal

import (
	"bytes"
	"errors"
	"testing"
)

// TestFlushIdempotent verifies a second flush without mutation writes nothing
func TestFlushIdempotent(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 10, 3)
	s.PutStr(1, 1, "hello")
	s.SetForeground(2, 1, RGB(10, 20, 30))

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Expected first flush to write output")
	}

	out.Reset()
	if err := s.Flush(); err != nil {
		t.Fatalf("Second flush failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected zero bytes on second flush, got %q", out.String())
	}
}

// TestFlushInitialClean verifies an untouched screen flushes nothing
func TestFlushInitialClean(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 4, 4)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

// TestFlushOutput verifies the exact escape stream for small diffs
func TestFlushOutput(t *testing.T) {
	red := RGB(255, 0, 0)
	blue := RGB(0, 0, 255)

	tests := []struct {
		name  string
		setup func(s *Screen)
		want  string
	}{
		{
			name: "adjacent cells share one cursor move",
			setup: func(s *Screen) {
				s.PutChar(0, 0, 'a')
				s.PutChar(1, 0, 'b')
			},
			want: "\x1b[1;1H\x1b[0mab",
		},
		{
			name: "gap repositions cursor",
			setup: func(s *Screen) {
				s.PutChar(0, 0, 'a')
				s.PutChar(2, 0, 'c')
			},
			want: "\x1b[1;1H\x1b[0ma\x1b[1;3Hc",
		},
		{
			name: "next row repositions cursor",
			setup: func(s *Screen) {
				s.PutChar(3, 0, 'a')
				s.PutChar(0, 1, 'b')
			},
			want: "\x1b[1;4H\x1b[0ma\x1b[2;1Hb",
		},
		{
			name: "color emitted once for a run",
			setup: func(s *Screen) {
				s.PutStr(0, 0, "xy")
				s.SetForeground(0, 0, red)
				s.SetForeground(1, 0, red)
			},
			want: "\x1b[1;1H\x1b[0m\x1b[38;2;255;0;0mxy",
		},
		{
			name: "background and return to default",
			setup: func(s *Screen) {
				s.PutStr(0, 0, "xy")
				s.SetBackground(0, 0, blue)
			},
			want: "\x1b[1;1H\x1b[0m\x1b[48;2;0;0;255mx\x1b[49my",
		},
		{
			name: "attribute change resets color memo",
			setup: func(s *Screen) {
				s.PutStr(0, 0, "XY")
				s.SetAttr(0, 0, AttrBold|AttrUnderline)
				s.SetForeground(0, 0, red)
				s.SetForeground(1, 0, red)
			},
			want: "\x1b[1;1H\x1b[0;1;4m\x1b[38;2;255;0;0mX\x1b[0m\x1b[38;2;255;0;0mY",
		},
		{
			name: "black differs from default",
			setup: func(s *Screen) {
				s.SetForeground(0, 0, RGB(0, 0, 0))
			},
			want: "\x1b[1;1H\x1b[0m\x1b[38;2;0;0;0m ",
		},
		{
			name: "multibyte glyph",
			setup: func(s *Screen) {
				s.PutChar(0, 0, '█')
			},
			want: "\x1b[1;1H\x1b[0m█",
		},
		{
			name: "control glyph rendered as space",
			setup: func(s *Screen) {
				s.PutChar(0, 0, '\a')
			},
			want: "\x1b[1;1H\x1b[0m ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewScreen(&out, 4, 2)
			tt.setup(s)
			if err := s.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestFlushOnlyChangedCells verifies unchanged cells are skipped after a flush
func TestFlushOnlyChangedCells(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 5, 2)
	s.PutStr(0, 0, "abcde")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out.Reset()
	s.PutChar(3, 0, 'X')
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if want := "\x1b[1;4H\x1b[0mX"; out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

// TestOutOfRangeIgnored verifies mutations outside the grid are no-ops
func TestOutOfRangeIgnored(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 3, 2)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}, {-5, -5}}
	for _, c := range coords {
		s.PutChar(c[0], c[1], 'x')
		s.SetForeground(c[0], c[1], RGB(1, 2, 3))
		s.SetBackground(c[0], c[1], RGB(1, 2, 3))
		s.SetAttr(c[0], c[1], AttrBold)
		s.SetCell(c[0], c[1], Cell{Rune: 'y'})
		if _, ok := s.Cell(c[0], c[1]); ok {
			t.Errorf("Cell(%d,%d) reported in range", c[0], c[1])
		}
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

// TestZeroSizeScreen verifies degenerate grids are usable
func TestZeroSizeScreen(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 0, -3)
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Fatalf("Expected 0x0, got %dx%d", w, h)
	}
	s.PutChar(0, 0, 'x')
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

// TestClearOnlyBackBuffer verifies Clear produces a diff against what was shown
func TestClearOnlyBackBuffer(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 3, 1)
	s.PutStr(0, 0, "abc")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out.Reset()
	s.Clear()
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if want := "\x1b[1;1H\x1b[0m   "; out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

// TestPutStr verifies newline handling and clipping
func TestPutStr(t *testing.T) {
	s := NewScreen(&bytes.Buffer{}, 4, 2)

	n := s.PutStr(2, 0, "ab\ncdef\ngh")
	// Row 0: "ab" at 2,3; row 1: "cd" at 2,3, "ef" clipped; row 2 off-grid
	if n != 4 {
		t.Errorf("Expected 4 cells written, got %d", n)
	}

	checks := []struct {
		x, y int
		r    rune
	}{
		{2, 0, 'a'}, {3, 0, 'b'}, {2, 1, 'c'}, {3, 1, 'd'}, {0, 0, ' '}, {1, 1, ' '},
	}
	for _, c := range checks {
		cell, ok := s.Cell(c.x, c.y)
		if !ok || cell.Rune != c.r {
			t.Errorf("Cell(%d,%d): expected %q, got %q", c.x, c.y, c.r, cell.Rune)
		}
	}
}

// TestFill verifies rectangle fill is clipped to the grid
func TestFill(t *testing.T) {
	s := NewScreen(&bytes.Buffer{}, 3, 3)
	fill := Cell{Rune: '#', Bg: ColorBlue}
	s.Fill(1, 1, 5, 5, fill)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell, _ := s.Cell(x, y)
			want := DefaultCell
			if x >= 1 && y >= 1 {
				want = fill
			}
			if cell != want {
				t.Errorf("Cell(%d,%d): expected %+v, got %+v", x, y, want, cell)
			}
		}
	}
}

// TestInvalidateRepaintsAll verifies a forced flush rewrites unchanged cells
func TestInvalidateRepaintsAll(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 2, 1)
	s.Invalidate()
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if want := "\x1b[1;1H\x1b[0m  "; out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}

	out.Reset()
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected invalidation to be one-shot, got %q", out.String())
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) { return 0, errWrite }

// TestFlushWriteError verifies write failures reach the caller
func TestFlushWriteError(t *testing.T) {
	s := NewScreen(failWriter{}, 2, 1)
	s.PutChar(0, 0, 'x')
	err := s.Flush()
	if !errors.Is(err, errWrite) {
		t.Fatalf("Expected wrapped write error, got %v", err)
	}
}

// TestColorBlend verifies blending endpoints and default handling
func TestColorBlend(t *testing.T) {
	a := RGB(255, 0, 0)
	b := RGB(0, 0, 255)

	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend at 0: expected %v, got %v", a, got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend at 1: expected %v, got %v", b, got)
	}
	if got := Blend(ColorDefault, b, 0.5); got != b {
		t.Errorf("Blend from default: expected %v, got %v", b, got)
	}
	if got := Blend(a, b, 0.5); !got.IsSet() {
		t.Error("Blend midpoint should be a set color")
	}
}

// TestColorString verifies hex rendering
func TestColorString(t *testing.T) {
	if got := RGB(0x12, 0xab, 0x00).String(); got != "#12ab00" {
		t.Errorf("Expected #12ab00, got %s", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("Expected default, got %s", got)
	}
	if RGB(0, 0, 0) == ColorDefault {
		t.Error("Black must differ from default")
	}
}
