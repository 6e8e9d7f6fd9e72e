// Package console implements the 80x25 VGA text-mode terminal: the cell
// buffer, cursor tracking, scrolling, and color handling. Grounded on
// vga.rs's Terminal struct for the cell format and cursor-port sequence,
// and on colors.go (ColorScheme struct + named palette) for naming
// foreground/background pairs instead of passing raw attribute bytes
// around.
package console

const (
	Width  = 80
	Height = 25
)

// Color is one of the 16 VGA text-mode colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightBrown
	White
)

// Scheme names a foreground/background pair, generalizing colors.go's
// ColorScheme from a fixed palette of named roles to the plain two-color
// attribute this text-mode console actually uses.
type Scheme struct {
	Foreground Color
	Background Color
}

func (s Scheme) attribute() uint8 {
	return uint8(s.Foreground) | uint8(s.Background)<<4
}

func makeEntry(c byte, attr uint8) uint16 {
	return uint16(c) | uint16(attr)<<8
}

// cursorSink abstracts the VGA CRTC cursor-position port writes so the
// portable Terminal logic stays testable on a host without real hardware.
// The hardware build supplies an implementation over ports 0x3D4/0x3D5.
type cursorSink interface {
	SetCursor(pos uint16)
}

type noopCursor struct{}

func (noopCursor) SetCursor(uint16) {}

// Terminal is the console state: cursor position, current color, and the
// cell buffer. buffer is injected so tests can use a plain Go slice while
// the hardware build points it at the memory-mapped framebuffer at
// physical 0xB8000.
type Terminal struct {
	row, column int
	color       uint8
	buffer      []uint16
	cursor      cursorSink
}

// New creates a Terminal over buffer, which must have Width*Height
// entries. cursor may be nil, in which case cursor-position writes are
// dropped (useful in tests).
func New(buffer []uint16, cursor cursorSink) *Terminal {
	if len(buffer) != Width*Height {
		panic("console: buffer must have Width*Height entries")
	}
	if cursor == nil {
		cursor = noopCursor{}
	}
	return &Terminal{buffer: buffer, cursor: cursor}
}

// Initialize clears the screen with the default light-grey-on-black
// scheme and resets the cursor to the top-left.
func (t *Terminal) Initialize() {
	t.color = Scheme{Foreground: LightGrey, Background: Black}.attribute()
	t.row, t.column = 0, 0
	t.fill(' ', t.color)
	t.updateCursor()
}

func (t *Terminal) fill(c byte, attr uint8) {
	entry := makeEntry(c, attr)
	for i := range t.buffer {
		t.buffer[i] = entry
	}
}

func (t *Terminal) putEntryAt(c byte, attr uint8, x, y int) {
	t.buffer[y*Width+x] = makeEntry(c, attr)
}

// PutChar writes one byte at the cursor and advances it, wrapping to a
// new line at the right edge or on '\n'.
func (t *Terminal) PutChar(c byte) {
	if c == '\n' {
		t.newLine()
		return
	}
	t.putEntryAt(c, t.color, t.column, t.row)
	t.column++
	if t.column == Width {
		t.newLine()
	}
	t.updateCursor()
}

// PutString writes every byte of s via PutChar.
func (t *Terminal) PutString(s string) {
	for i := 0; i < len(s); i++ {
		t.PutChar(s[i])
	}
}

// WriteLine writes s followed by a newline.
func (t *Terminal) WriteLine(s string) {
	t.PutString(s)
	t.newLine()
}

func (t *Terminal) newLine() {
	t.column = 0
	t.row++
	if t.row == Height {
		t.scroll()
		t.row = Height - 1
	}
	t.updateCursor()
}

func (t *Terminal) scroll() {
	for y := 0; y < Height-1; y++ {
		for x := 0; x < Width; x++ {
			t.buffer[y*Width+x] = t.buffer[(y+1)*Width+x]
		}
	}
	for x := 0; x < Width; x++ {
		t.putEntryAt(' ', t.color, x, Height-1)
	}
}

func (t *Terminal) updateCursor() {
	pos := uint16(t.row*Width + t.column)
	t.cursor.SetCursor(pos)
}

// SetColor sets the raw VGA attribute byte used by subsequent writes.
func (t *Terminal) SetColor(attr uint8) {
	t.color = attr
}

// SetScheme sets the foreground/background pair used by subsequent writes.
func (t *Terminal) SetScheme(s Scheme) {
	t.color = s.attribute()
}

// PutAt writes c with attr at (x, y) without moving the cursor.
func (t *Terminal) PutAt(c byte, attr uint8, x, y int) {
	t.putEntryAt(c, attr, x, y)
}

// SetCursor moves the cursor to (row, column) and updates the hardware
// cursor position.
func (t *Terminal) SetCursor(row, column int) {
	t.row, t.column = row, column
	t.updateCursor()
}

// Clear blanks the screen with the current color and resets the cursor.
func (t *Terminal) Clear() {
	t.fill(' ', t.color)
	t.row, t.column = 0, 0
	t.updateCursor()
}
