package switcher

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderer buffers one frame of clear/fill calls and paints it onto
// the ebiten screen on Draw.
type FrameRenderer struct {
	background color.Color
	fill       color.Color
	presented  bool
	frames     int
}

// NewFrameRenderer creates a renderer that has not presented anything yet
func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{
		background: color.Black,
		fill:       color.Black,
	}
}

// Clear starts a new frame with the background color
func (r *FrameRenderer) Clear(bg color.Color) {
	r.background = bg
	r.fill = bg
	r.presented = false
}

// Fill paints the whole frame with c
func (r *FrameRenderer) Fill(c color.Color) {
	r.fill = c
}

// Present marks the buffered frame as complete
func (r *FrameRenderer) Present() {
	r.presented = true
	r.frames++
}

// Color returns the color the screen will be filled with
func (r *FrameRenderer) Color() color.Color {
	return r.fill
}

// Presented returns true once a complete frame is buffered
func (r *FrameRenderer) Presented() bool {
	return r.presented
}

// Frames returns the number of presented frames
func (r *FrameRenderer) Frames() int {
	return r.frames
}

// Draw paints the last presented frame
func (r *FrameRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.background)
	if r.presented {
		screen.Fill(r.fill)
	}
}
