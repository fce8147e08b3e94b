package renderer

import (
	"math"

	"github.com/arnovandash/go-raytracer/pkg/camera"
	"github.com/arnovandash/go-raytracer/pkg/core"
)

// RenderDOF renders subFrames sub-frames with the camera orbiting the scene's
// eye position on a circle of radius aperture, blending them into a
// running average. This approximates a thin-lens depth-of-field effect by
// resampling the same scene from slightly different eye positions rather
// than jittering within a single pixel, and is layered on top of (not a
// replacement for) the per-pixel jittered supersampling the tile pipeline
// already performs.
//
// With subFrames < 2 there is nothing to orbit, and RenderDOF returns a
// plain Render() instead.
func (p *Pipeline) RenderDOF(subFrames int, aperture float64) []uint32 {
	if subFrames < 2 {
		return p.Render()
	}

	original := p.Scene.Camera
	width, height := p.Scene.Width, p.Scene.Height
	accum := make([][3]float64, width*height)

	angleStep := 2 * math.Pi / float64(subFrames-1)
	for i := 0; i < subFrames; i++ {
		angle := float64(i) * angleStep
		offset := core.NewVec3(math.Cos(angle)*aperture, 0, math.Sin(angle)*aperture)
		p.Scene.Camera = camera.NewCamera(original.Loc.Add(offset), original.LookAt, original.WorldUp, width, height, original.Aperture)

		frame := p.Render()
		for idx, packed := range frame {
			accum[idx][0] += float64(packed >> 16 & 0xFF)
			accum[idx][1] += float64(packed >> 8 & 0xFF)
			accum[idx][2] += float64(packed & 0xFF)
		}
	}
	p.Scene.Camera = original

	out := make([]uint32, len(accum))
	for i, c := range accum {
		r := uint32(c[0]/float64(subFrames)) & 0xFF
		g := uint32(c[1]/float64(subFrames)) & 0xFF
		b := uint32(c[2]/float64(subFrames)) & 0xFF
		out[i] = r<<16 | g<<8 | b
	}
	return out
}
