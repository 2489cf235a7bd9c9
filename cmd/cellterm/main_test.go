package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellterm/config"
	"github.com/lixenwraith/cellterm/input"
	"github.com/lixenwraith/cellterm/terminal"
	"github.com/lixenwraith/cellterm/terminal/tui"
)

// scriptReader hands out one chunk per Read and then reports no data
type scriptReader struct {
	chunks []string
}

func (r *scriptReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, nil
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if r.chunks[0] == "" {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func TestDrainEvents(t *testing.T) {
	r := &scriptReader{chunks: []string{"ab", "\x1b[A", "c"}}
	dec := terminal.NewDecoder(r)

	var got []string
	ok := drainEvents(dec, func(ev terminal.Event) bool {
		got = append(got, ev.String())
		return true
	})
	if !ok {
		t.Fatal("drainEvents stopped without being asked")
	}
	want := "key a|key b|key up|key c"
	if s := strings.Join(got, "|"); s != want {
		t.Errorf("events = %q, want %q", s, want)
	}
}

func TestDrainEventsStopsOnIncomplete(t *testing.T) {
	r := &scriptReader{chunks: []string{"x\x1b[1;"}}
	dec := terminal.NewDecoder(r)

	n := 0
	drainEvents(dec, func(terminal.Event) bool { n++; return true })
	if n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
	if dec.Buffered() == 0 {
		t.Error("incomplete sequence should stay buffered")
	}
}

func TestDrainEventsHandlerStop(t *testing.T) {
	r := &scriptReader{chunks: []string{"qzz"}}
	dec := terminal.NewDecoder(r)

	n := 0
	ok := drainEvents(dec, func(ev terminal.Event) bool {
		n++
		return !ev.IsRune('q')
	})
	if ok || n != 1 {
		t.Errorf("ok=%v n=%d, want false 1", ok, n)
	}
}

func TestRunLoopQuits(t *testing.T) {
	r := &scriptReader{chunks: []string{"q"}}
	var out bytes.Buffer
	scr := terminal.NewScreen(&out, 4, 1)

	renders := 0
	err := runLoop(context.Background(), time.Millisecond, terminal.NewDecoder(r), scr,
		func(ev terminal.Event) bool { return !ev.IsRune('q') },
		func(s *terminal.Screen) { renders++; s.PutStr(0, 0, "hi") })
	if err != nil {
		t.Fatal(err)
	}
	if renders != 0 {
		t.Errorf("renders = %d, want 0 when quit arrives before first frame", renders)
	}
}

func TestRunLoopContextCancel(t *testing.T) {
	var out bytes.Buffer
	scr := terminal.NewScreen(&out, 4, 1)
	ctx, cancel := context.WithCancel(context.Background())

	renders := 0
	err := runLoop(ctx, time.Millisecond, terminal.NewDecoder(&scriptReader{}), scr,
		func(terminal.Event) bool { return true },
		func(s *terminal.Screen) {
			renders++
			s.PutStr(0, 0, "hi")
			if renders == 3 {
				cancel()
			}
		})
	if err != nil {
		t.Fatal(err)
	}
	if renders < 3 {
		t.Errorf("renders = %d, want at least 3", renders)
	}
	if !strings.Contains(out.String(), "hi") {
		t.Errorf("output %q missing rendered text", out.String())
	}
}

func TestEventLogRing(t *testing.T) {
	l := newEventLog(3, terminal.ColorDefault)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.add(s)
	}
	if got := strings.Join(l.lines, ","); got != "b,c,d" {
		t.Errorf("lines = %q, want b,c,d", got)
	}

	scr := terminal.NewScreen(&bytes.Buffer{}, 3, 2)
	l.Draw(scr, tui.BBox{W: 3, H: 2})
	for y, want := range []rune{'c', 'd'} {
		if c, _ := scr.Cell(0, y); c.Rune != want {
			t.Errorf("row %d = %q, want %q", y, c.Rune, want)
		}
	}
}

func TestPaintCanvas(t *testing.T) {
	ink := terminal.ColorYellow
	p := newPaintCanvas(terminal.ColorBlack, terminal.ColorBlue, ink)
	scr := terminal.NewScreen(&bytes.Buffer{}, 10, 5)
	box := tui.BBox{X: 2, Y: 1, W: 5, H: 3}
	p.Draw(scr, box)

	press := terminal.Event{Type: terminal.EventMouse, MouseBtn: terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress, MouseX: 4, MouseY: 2}
	if !p.handle(press) {
		t.Fatal("press inside box not consumed")
	}
	outside := press
	outside.MouseX = 0
	if p.handle(outside) {
		t.Error("press outside box consumed")
	}

	scr.Clear()
	p.Draw(scr, box)
	if c, _ := scr.Cell(4, 2); c.Rune != '█' || c.Fg != ink {
		t.Errorf("painted cell = %+v", c)
	}
	if c, _ := scr.Cell(2, 1); c.Rune != '@' || c.Bg != terminal.ColorBlack {
		t.Errorf("cursor cell = %+v", c)
	}
	if c, _ := scr.Cell(6, 1); c.Bg != terminal.ColorBlue {
		t.Errorf("gradient end = %v, want %v", c.Bg, terminal.ColorBlue)
	}

	erase := press
	erase.MouseBtn = terminal.MouseBtnRight
	p.handle(erase)
	if len(p.painted) != 0 {
		t.Error("right button should erase")
	}

	// Keyboard cursor stays inside the box
	for i := 0; i < 10; i++ {
		p.apply(input.ActionCursorRight)
	}
	if !p.apply(input.ActionPaint) {
		t.Error("paint not handled")
	}
	if p.apply(input.ActionQuit) {
		t.Error("quit is not a canvas action")
	}
	if _, ok := p.painted[[2]int{box.W - 1, 0}]; !ok {
		t.Errorf("space should paint the clamped cursor cell, painted=%v", p.painted)
	}
	p.apply(input.ActionClear)
	if len(p.painted) != 0 {
		t.Error("clear left painted cells")
	}
}

func TestDemoMenuAndQuit(t *testing.T) {
	a := &app{logger: log.New(&bytes.Buffer{})}
	cfg, err := config.Default().Resolve()
	if err != nil {
		t.Fatal(err)
	}
	a.cfg = cfg

	d := newDemo(a, 40, 12)
	esc := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}
	down := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyDown}
	enter := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEnter}

	if !d.handle(esc) || !d.menuOpen {
		t.Fatal("escape should open the menu")
	}
	// Resume -> Clear canvas -> Cycle border style
	d.handle(down)
	d.handle(down)
	d.handle(enter)
	if d.line != tui.LineSingle {
		t.Errorf("line = %v, want single after one cycle", d.line)
	}

	// q is a menu no-op while the menu is open
	if !d.handle(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}) {
		t.Error("q quit while menu open")
	}
	d.handle(down)
	if d.handle(enter) {
		t.Error("Quit entry did not stop the demo")
	}

	// b cycles the border outside the menu once it is closed
	d.menuOpen = false
	d.quit = false
	d.handle(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'b'})
	if d.line != tui.LineDouble {
		t.Errorf("line = %v, want double after second cycle", d.line)
	}

	scr := terminal.NewScreen(&bytes.Buffer{}, 40, 12)
	d.render(scr)
	if c, _ := scr.Cell(0, 0); c.Rune != '╔' {
		t.Errorf("corner = %q, want double-line corner", c.Rune)
	}
	if d.frames != 1 || d.eventsIn != 8 {
		t.Errorf("frames=%d events=%d", d.frames, d.eventsIn)
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("", log.InfoLevel)
	if err != nil || logger == nil {
		t.Fatalf("discard logger: %v", err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "sub", "cellterm.log")
	logger, closeLog, err = openLogger(path, log.DebugLevel)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "k", 1)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CELLTERM_CONFIG", path)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--defaults"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tick_ms") {
		t.Errorf("config output missing tick_ms: %q", out.String())
	}
}

func TestPalettePick(t *testing.T) {
	colors := []terminal.Color{terminal.ColorRed, terminal.ColorGreen, terminal.ColorBlue}
	var picked terminal.Color
	p := newPalette(colors, func(c terminal.Color) { picked = c })

	scr := terminal.NewScreen(&bytes.Buffer{}, 15, 1)
	box := tui.BBox{W: 15, H: 1}
	p.Draw(scr, box)
	if c, _ := scr.Cell(2, 0); c.Rune != '█' || c.Fg != terminal.ColorRed {
		t.Errorf("first swatch = %+v", c)
	}
	if c, _ := scr.Cell(0, 0); c.Rune != '[' {
		t.Errorf("selection marker = %q, want '['", c.Rune)
	}

	click := terminal.Event{Type: terminal.EventMouse, MouseBtn: terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress, MouseX: 12, MouseY: 0}
	if !p.handle(click) || picked != terminal.ColorBlue || p.selected != 2 {
		t.Errorf("click: picked=%v selected=%d", picked, p.selected)
	}

	release := click
	release.MouseAction = terminal.MouseActionRelease
	if p.handle(release) {
		t.Error("release should not pick")
	}
}
