package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrCrossed   Attr = 1 << 6
)

// attrSGR maps each attribute bit to its SGR parameter, in emission order
var attrSGR = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrCrossed, '9'},
}

// Has reports whether all bits of other are set
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

// Cell represents a single terminal cell.
// Rune holds one code point; it is UTF-8 encoded (at most 4 bytes) at flush time.
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultCell is a blank cell using terminal default colors
var DefaultCell = Cell{Rune: ' '}
