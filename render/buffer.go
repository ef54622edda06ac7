package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ylc3000/galaxy/colorspace"
)

// Cell is one terminal cell in the frame buffer
type Cell struct {
	Ch rune
	Fg colorspace.RGB
	Bg colorspace.RGB
}

// Buffer is the row-major frame buffer all renderers draw into before a
// single flush to the terminal
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Resize reallocates the buffer. Contents are cleared
func (b *Buffer) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Clear resets every cell to an empty black cell
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' '}
	}
}

// In reports whether the coordinate lies inside the buffer
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set overwrites a cell. Out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, ch rune, fg colorspace.RGB) {
	if !b.In(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Ch = ch
	c.Fg = fg
}

// AddLight accumulates additive foreground light in a cell, keeping the
// brighter rune. Overlapping points brighten instead of overwrite
func (b *Buffer) AddLight(x, y int, ch rune, fg colorspace.RGB) {
	if !b.In(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Fg = c.Fg.Add(fg)
	if c.Ch == ' ' {
		c.Ch = ch
	}
}

// Cell returns the cell at the coordinate, zero Cell when out of bounds
func (b *Buffer) Cell(x, y int) Cell {
	if !b.In(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// WriteString draws text left to right, clipped at the right edge
func (b *Buffer) WriteString(x, y int, s string, fg colorspace.RGB) {
	for i, r := range s {
		b.Set(x+i, y, r, fg)
	}
}

// Flush writes the buffer to the tcell screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
	screen.Show()
}
