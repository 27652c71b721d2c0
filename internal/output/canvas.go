package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// ASCIIFocusStyle marks the focused window without Unicode
	ASCIIFocusStyle = BoxStyle{
		TopLeft:     '#',
		TopRight:    '#',
		BottomLeft:  '#',
		BottomRight: '#',
		Horizontal:  '=',
		Vertical:    '#',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	}

	// UnicodeFocusStyle draws the focused window with double lines
	UnicodeFocusStyle = BoxStyle{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}

	// UnicodeMonitorStyle draws monitor outlines with heavy lines
	UnicodeMonitorStyle = BoxStyle{
		TopLeft:     '┏',
		TopRight:    '┓',
		BottomLeft:  '┗',
		BottomRight: '┛',
		Horizontal:  '━',
		Vertical:    '┃',
	}
)

// Palette groups the box styles used for one rendering
type Palette struct {
	Monitor BoxStyle
	Window  BoxStyle
	Focused BoxStyle
}

// NewPalette returns the Unicode or ASCII palette
func NewPalette(useUnicode bool) Palette {
	if useUnicode {
		return Palette{Monitor: UnicodeMonitorStyle, Window: UnicodeStyle, Focused: UnicodeFocusStyle}
	}
	return Palette{Monitor: ASCIIStyle, Window: ASCIIStyle, Focused: ASCIIFocusStyle}
}

// Canvas represents a 2D character buffer for drawing
type Canvas struct {
	Width  int
	Height int
	buffer [][]rune
}

// NewCanvas creates a new blank canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	return &Canvas{
		Width:  width,
		Height: height,
		buffer: buffer,
	}
}

// SetCell sets a character at the specified position
func (c *Canvas) SetCell(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.buffer[y][x] = r
	}
}

// GetCell returns the character at the specified position
func (c *Canvas) GetCell(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.buffer[y][x]
	}
	return ' '
}

// DrawBox draws a box outline in the given style
func (c *Canvas) DrawBox(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return // Box too small to draw
	}

	// Draw corners
	c.SetCell(x, y, style.TopLeft)
	c.SetCell(x+width-1, y, style.TopRight)
	c.SetCell(x, y+height-1, style.BottomLeft)
	c.SetCell(x+width-1, y+height-1, style.BottomRight)

	// Draw horizontal lines
	for i := 1; i < width-1; i++ {
		c.SetCell(x+i, y, style.Horizontal)
		c.SetCell(x+i, y+height-1, style.Horizontal)
	}

	// Draw vertical lines
	for i := 1; i < height-1; i++ {
		c.SetCell(x, y+i, style.Vertical)
		c.SetCell(x+width-1, y+i, style.Vertical)
	}
}

// DrawText writes text at the specified position, clipped to maxWidth runes
// when maxWidth is positive
func (c *Canvas) DrawText(x, y int, text string, maxWidth int) {
	i := 0
	for _, r := range text {
		if maxWidth > 0 && i >= maxWidth {
			return
		}
		c.SetCell(x+i, y, r)
		i++
	}
}

// String renders the canvas, trimming trailing spaces from each line
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.buffer {
		sb.WriteString(strings.TrimRight(string(row), " "))
		if i < len(c.buffer)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
