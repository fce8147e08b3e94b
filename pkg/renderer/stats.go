package renderer

import "sync/atomic"

// RenderStats are the process-wide ray/intersection counters, merged from
// each worker's thread-local Stats exactly once at worker termination.
// They are not reset between frames: a Pipeline that renders more than once
// (including RenderDOF's sub-frames) reports the totals of all its frames.
type RenderStats struct {
	PrimaryRays       atomic.Int64
	ReflectionRays    atomic.Int64
	RefractionRays    atomic.Int64
	ShadowRays        atomic.Int64
	IntersectionTests atomic.Int64
	TotalRays         atomic.Int64
}

// NewRenderStats returns a zeroed RenderStats ready for a new frame.
func NewRenderStats() *RenderStats {
	return &RenderStats{}
}

// Merge atomically folds one worker's local counters into the shared
// totals. Called once per worker, at termination.
func (rs *RenderStats) Merge(primary, reflection, refraction, shadow, intersections, total int) {
	rs.PrimaryRays.Add(int64(primary))
	rs.ReflectionRays.Add(int64(reflection))
	rs.RefractionRays.Add(int64(refraction))
	rs.ShadowRays.Add(int64(shadow))
	rs.IntersectionTests.Add(int64(intersections))
	rs.TotalRays.Add(int64(total))
}

// Snapshot is a point-in-time, non-atomic copy of RenderStats suitable for
// formatting and logging after all workers have joined.
type Snapshot struct {
	PrimaryRays       int64
	ReflectionRays    int64
	RefractionRays    int64
	ShadowRays        int64
	IntersectionTests int64
	TotalRays         int64
}

// Snapshot reads the current totals.
func (rs *RenderStats) Snapshot() Snapshot {
	return Snapshot{
		PrimaryRays:       rs.PrimaryRays.Load(),
		ReflectionRays:    rs.ReflectionRays.Load(),
		RefractionRays:    rs.RefractionRays.Load(),
		ShadowRays:        rs.ShadowRays.Load(),
		IntersectionTests: rs.IntersectionTests.Load(),
		TotalRays:         rs.TotalRays.Load(),
	}
}
