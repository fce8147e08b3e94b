package renderer

import (
	"sync"

	"github.com/arnovandash/go-raytracer/pkg/core"
	"github.com/arnovandash/go-raytracer/pkg/integrator"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

// Pipeline drives one full-frame render: tile partition, one goroutine per
// tile, jittered supersampling, and a single atomic stats merge per
// worker at termination. There is no worker pool or task queue — every
// tile gets its own goroutine and they all run concurrently, matching the
// one-thread-per-tile model the renderer is specified against.
type Pipeline struct {
	Scene  *scene.Scene
	Stats  *RenderStats
	Logger core.Logger

	// Flat requests preview mode: base shading only, no reflection or
	// refraction recursion.
	Flat bool

	// OnTile, when set, is called once a tile's pixels have all been
	// written into the buffer, from that tile's own goroutine. A
	// terminal preview uses this to blit completed tiles as they land,
	// without needing access to the renderer's internals.
	OnTile func(tile Tile, buf []uint32)
}

// NewPipeline creates a render pipeline for s, logging progress via log
// (may be nil to discard).
func NewPipeline(s *scene.Scene, log core.Logger) *Pipeline {
	return &Pipeline{Scene: s, Stats: NewRenderStats(), Logger: log}
}

// Render produces a fresh packed pixel buffer for the whole frame. Tiles
// run concurrently and write only to their own disjoint region, so no
// locking is needed on the buffer itself.
func (p *Pipeline) Render() []uint32 {
	buf := make([]uint32, p.Scene.Width*p.Scene.Height)
	p.RenderInto(buf)
	return buf
}

// RenderInto re-renders into an existing buffer, dimming it first (halving
// every byte) so repeated calls give visible fade feedback between frames,
// then dispatching one goroutine per tile.
func (p *Pipeline) RenderInto(buf []uint32) {
	DimBuffer(buf)

	tiles := PartitionTiles(p.Scene.Width, p.Scene.Height)

	var wg sync.WaitGroup
	wg.Add(len(tiles))
	for _, tile := range tiles {
		go func(tile Tile) {
			defer wg.Done()
			p.renderTile(tile, buf)
		}(tile)
	}
	wg.Wait()

	if p.Logger != nil {
		s := p.Stats.Snapshot()
		p.Logger.Printf("render complete: %d primary, %d reflection, %d refraction, %d shadow rays, %d intersection tests",
			s.PrimaryRays, s.ReflectionRays, s.RefractionRays, s.ShadowRays, s.IntersectionTests)
	}
}

// renderTile is the per-worker loop: derive the tile's deterministic PRNG,
// shade every pixel in the tile's bounds, and merge thread-local stats
// once at the end.
func (p *Pipeline) renderTile(tile Tile, buf []uint32) {
	rng := newXorshift32(tile.GridX, tile.GridY)
	s := p.Scene
	super := s.Super
	if super < 1 {
		super = 1
	}

	var local integrator.Stats

	for py := tile.MinY; py < tile.MaxY; py++ {
		for px := tile.MinX; px < tile.MaxX; px++ {
			var acc SampleAccumulator
			for i := 0; i < super; i++ {
				ox, oy := 0.5, 0.5
				if super > 1 {
					ox, oy = rng.unit(), rng.unit()
				}
				ray := s.Camera.GetRay(float64(px), float64(py), ox, oy)
				colour := integrator.RayColor(s, ray, 0, p.Flat, &local)
				acc.Add(colour)
			}
			buf[py*s.Width+px] = acc.Pack()
		}
	}

	p.Stats.Merge(local.PrimaryRays, local.ReflectionRays, local.RefractionRays,
		local.ShadowRays, local.IntersectionTests, local.TotalRays)

	if p.OnTile != nil {
		p.OnTile(tile, buf)
	}
}
