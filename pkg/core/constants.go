package core

// Epsilon is the floating-point tolerance used throughout the ray-intersection
// engine: rejecting hits behind the ray origin, discarding near-parallel
// ray/surface configurations, avoiding shadow-ray self-intersection, and the
// early-exit threshold on shadow transmittance.
const Epsilon = 1e-6

// Logger is a Printf-style sink for renderer progress and diagnostics. The
// core never performs I/O itself; callers (CLI, terminal preview, tests)
// supply a Logger so none of pkg/core, pkg/scene, pkg/integrator or
// pkg/renderer need to know whether output goes to stdout, a buffer or a
// terminal status line.
type Logger interface {
	Printf(format string, args ...interface{})
}
