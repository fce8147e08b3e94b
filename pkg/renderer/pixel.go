package renderer

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/core"
)

// channelByte converts a [0,1] colour channel to a rounded 8-bit value.
func channelByte(c float64) uint32 {
	v := math.Round(c * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint32(v)
}

// Pack converts a clamped [0,1]^3 colour into a 0x00RRGGBB pixel value.
func Pack(c core.Vec3) uint32 {
	r := channelByte(c.X)
	g := channelByte(c.Y)
	b := channelByte(c.Z)
	return r<<16 | g<<8 | b
}

// SampleAccumulator sums per-sample 8-bit channel values across
// supersamples and produces a final packed pixel by truncating (not
// rounding) the average toward zero, matching the specified supersample
// averaging behaviour.
type SampleAccumulator struct {
	sumR, sumG, sumB uint32
	count            int
}

// Add records one jittered sample's colour.
func (a *SampleAccumulator) Add(c core.Vec3) {
	a.sumR += channelByte(c.X)
	a.sumG += channelByte(c.Y)
	a.sumB += channelByte(c.Z)
	a.count++
}

// Pack returns the packed average pixel, each channel computed as
// floor(sum/count) — truncation toward zero, not rounding to nearest.
func (a *SampleAccumulator) Pack() uint32 {
	if a.count == 0 {
		return 0
	}
	r := a.sumR / uint32(a.count)
	g := a.sumG / uint32(a.count)
	b := a.sumB / uint32(a.count)
	return r<<16 | g<<8 | b
}

// DimBuffer right-shifts every byte of a packed pixel buffer by one,
// halving R, G and B independently — the "fade" applied before each
// re-render.
func DimBuffer(buf []uint32) {
	for i, p := range buf {
		r := (p >> 16 & 0xFF) >> 1
		g := (p >> 8 & 0xFF) >> 1
		b := (p & 0xFF) >> 1
		buf[i] = r<<16 | g<<8 | b
	}
}
