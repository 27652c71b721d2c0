package output

// ScalingContext maps the workspace plane (pixels) onto terminal cells.
// One uniform scale keeps the plane's proportions; rows are squashed by
// AspectRatio because terminal cells are about twice as tall as they are wide.
type ScalingContext struct {
	// Plane dimensions in pixels
	PixelWidth  int
	PixelHeight int

	// Terminal dimensions in characters
	TermWidth  int
	TermHeight int

	// Pixels to columns; rows use Scale / AspectRatio
	Scale       float64
	AspectRatio float64
}

// NewScalingContext fits a plane of the given size into a terminal area
func NewScalingContext(pixelWidth, pixelHeight, termWidth, termHeight int) *ScalingContext {
	const aspect = 2.0

	if pixelWidth <= 0 {
		pixelWidth = 1
	}
	if pixelHeight <= 0 {
		pixelHeight = 1
	}
	if termWidth < 10 {
		termWidth = 10
	}
	if termHeight < 5 {
		termHeight = 5
	}

	scaleX := float64(termWidth-1) / float64(pixelWidth)
	scaleY := float64(termHeight-1) * aspect / float64(pixelHeight)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return &ScalingContext{
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
		TermWidth:   termWidth,
		TermHeight:  termHeight,
		Scale:       scale,
		AspectRatio: aspect,
	}
}

// PixelToTerminal converts plane coordinates to a terminal cell
func (sc *ScalingContext) PixelToTerminal(x, y int) (int, int) {
	return int(float64(x) * sc.Scale), int(float64(y) * sc.Scale / sc.AspectRatio)
}

// ScaleSize converts pixel dimensions to a cell count, never smaller than 3x2
func (sc *ScalingContext) ScaleSize(w, h int) (int, int) {
	termW := int(float64(w) * sc.Scale)
	termH := int(float64(h) * sc.Scale / sc.AspectRatio)

	// Minimum size of 3x2 for visibility
	if termW < 3 {
		termW = 3
	}
	if termH < 2 {
		termH = 2
	}

	return termW, termH
}

// Used returns the number of columns and rows the whole plane occupies
func (sc *ScalingContext) Used() (int, int) {
	w, h := sc.PixelToTerminal(sc.PixelWidth, sc.PixelHeight)
	return w + 1, h + 1
}

// ClampToCanvas ensures a box stays within the used area
func (sc *ScalingContext) ClampToCanvas(x, y, w, h int) (int, int, int, int) {
	maxW, maxH := sc.Used()

	// Clamp position
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}

	// Clamp size
	if x+w > maxW {
		w = maxW - x
	}
	if y+h > maxH {
		h = maxH - y
	}

	return x, y, w, h
}
