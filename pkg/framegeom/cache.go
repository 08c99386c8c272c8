// Package framegeom maps frame kinds to the margins their chrome adds
// around the image, and holds the reference artwork sizes of phone frames.
package framegeom

import (
	"math"
	"sync"

	"github.com/user/mockshot/pkg/pipeline"
)

// minZoom is the smallest zoom factor applied to scaled offsets.
const minZoom = 0.01

// baseOffsets are the unscaled margins per frame kind.
var baseOffsets = map[pipeline.FrameKind]pipeline.FrameOffsets{
	pipeline.FrameNone:    {},
	pipeline.FrameBrowser: {Top: 40},
	pipeline.FrameMacOS:   {Top: 28},
	pipeline.FrameWindows: {Top: 32},
	pipeline.FrameIPhone:  {Top: 16, Bottom: 16, Left: 16, Right: 16},
	pipeline.FrameAndroid: {Top: 12, Bottom: 12, Left: 12, Right: 12},
}

type cacheKey struct {
	kind pipeline.FrameKind
	zoom float64
}

// Cache memoizes frame offsets by (kind, zoom).
// A hit returns the same pointer as the miss that created it.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*pipeline.FrameOffsets
	version uint64
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[cacheKey]*pipeline.FrameOffsets)}
}

// Offsets returns the margins for kind at the given zoom.
// Only phone frames scale with zoom; other kinds use fixed pixels.
// Unknown kinds behave like FrameNone.
func (c *Cache) Offsets(kind pipeline.FrameKind, zoom float64) *pipeline.FrameOffsets {
	if _, ok := baseOffsets[kind]; !ok {
		kind = pipeline.FrameNone
	}
	if math.IsNaN(zoom) {
		zoom = 0
	}
	key := cacheKey{kind: kind, zoom: zoom}

	c.mu.Lock()
	defer c.mu.Unlock()

	if off, ok := c.entries[key]; ok {
		return off
	}

	off := compute(kind, zoom)
	c.entries[key] = off
	c.version++
	return off
}

// Version increases every time Offsets computes a new entry.
// Callers compare versions instead of relying on pointer identity.
func (c *Cache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*pipeline.FrameOffsets)
}

func compute(kind pipeline.FrameKind, zoom float64) *pipeline.FrameOffsets {
	base := baseOffsets[kind]
	if !kind.IsPhone() {
		return &base
	}
	if zoom < minZoom {
		zoom = minZoom
	}
	return &pipeline.FrameOffsets{
		Top:    scale(base.Top, zoom),
		Bottom: scale(base.Bottom, zoom),
		Left:   scale(base.Left, zoom),
		Right:  scale(base.Right, zoom),
	}
}

func scale(v int, zoom float64) int {
	return int(math.Round(float64(v) * zoom))
}
