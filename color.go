package xraster

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Color is a packed 24-bit RGB color. Stored little-endian, byte 0 is
// red, byte 1 is green and byte 2 is blue. The most significant byte is
// ignored, and a Color is always fully opaque.
type Color uint32

// Stock colors.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0x0000FF
	Green   Color = 0x00FF00
	Blue    Color = 0xFF0000
	Cyan    Color = Green | Blue
	Magenta Color = Red | Blue
	Yellow  Color = Red | Green

	// DefaultBackground is the background of a canvas created with
	// DefaultConfig.
	DefaultBackground Color = 0x202020
)

// RGB packs the given channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r) | (Color(g) << 8) | (Color(b) << 16)
}

// RGB returns the channels of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Bytes returns c in its in-memory layout, red first.
func (c Color) Bytes() (buf [4]byte) {
	binary.LittleEndian.PutUint32(buf[:], uint32(c))
	buf[3] = 0
	return buf
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

// String formats c as #rrggbb.
func (c Color) String() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Model converts colors to Color. Alpha is discarded after the
// premultiplied channels are reduced to 8 bits, so translucent colors
// come out darker, the same as compositing them over black.
var Model color.Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}

	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
