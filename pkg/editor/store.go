// Package editor holds the interactive editing state: the style, the source
// image and the geometry derived from them.
//
// Mutators that change the canvas size (padding, zoom, frame) update their
// value at once and coalesce the geometry recompute into one trailing run
// per burst. Loading an image and fixing or clearing the output size
// recompute synchronously. While an output size is fixed no automatic
// recompute happens. Every other mutator is consistent when it returns.
package editor

import (
	"errors"
	"image"
	"math"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/user/mockshot/pkg/adapters/logger"
	"github.com/user/mockshot/pkg/debounce"
	"github.com/user/mockshot/pkg/framegeom"
	"github.com/user/mockshot/pkg/pipeline"
	"github.com/user/mockshot/pkg/ports"
	"github.com/user/mockshot/pkg/stages/layout"
)

// DefaultCoalesceWindow is how long geometry changes are collected before
// one recompute runs.
const DefaultCoalesceWindow = 16 * time.Millisecond

const minZoom = 0.01

// ErrOverlayNotFound is returned when a text overlay ID is unknown.
var ErrOverlayNotFound = errors.New("editor: text overlay not found")

// Snapshot is an immutable copy of the store's state.
type Snapshot struct {
	Style    pipeline.StyleParameters
	Image    image.Image
	Geometry pipeline.LayoutGeometry

	// Pending is true while a coalesced recompute has not run yet.
	// Geometry then still reflects the previous committed values.
	Pending bool

	// Version increases on every state change.
	Version uint64
}

// ImageSize returns the source image size, or zero without an image.
func (s Snapshot) ImageSize() pipeline.Dimension {
	if s.Image == nil {
		return pipeline.Dimension{}
	}
	b := s.Image.Bounds()
	return pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}
}

// Store is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	style      pipeline.StyleParameters
	img        image.Image
	geometry   pipeline.LayoutGeometry
	pending    bool
	fixed      bool
	version    uint64
	recomputes int
	closed     bool

	subs    map[int]func(Snapshot)
	nextSub int

	window   time.Duration
	cache    *framegeom.Cache
	logger   ports.Logger
	debounce *debounce.Func[struct{}]
}

// Option configures a Store.
type Option func(*Store)

// WithCoalesceWindow sets the debounce window for geometry recomputes.
func WithCoalesceWindow(d time.Duration) Option {
	return func(s *Store) { s.window = d }
}

// WithCache shares a frame offsets cache with other components.
func WithCache(c *framegeom.Cache) Option {
	return func(s *Store) { s.cache = c }
}

// WithStyle sets the initial style.
func WithStyle(style pipeline.StyleParameters) Option {
	return func(s *Store) { s.style = cloneStyle(style) }
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(s *Store) { s.logger = l.WithComponent("editor") }
}

// New creates a Store with the default style and no image.
func New(opts ...Option) *Store {
	s := &Store{
		style:  pipeline.DefaultStyleParameters(),
		subs:   make(map[int]func(Snapshot)),
		window: DefaultCoalesceWindow,
		logger: logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = framegeom.New()
	}
	s.fixed = s.style.OutputSize.Positive()
	s.debounce = debounce.New(func(struct{}) { s.recompute() }, s.window)
	return s
}

// SetImage replaces the source image and recomputes geometry at once.
func (s *Store) SetImage(img image.Image) {
	s.debounce.Cancel()
	s.commit(func() bool {
		s.img = img
		return true
	})
}

// SetOutputSize fixes the canvas size and suspends automatic recomputes.
// A non-positive size clears the override.
func (s *Store) SetOutputSize(width, height int) {
	size := pipeline.Dimension{Width: width, Height: height}
	if !size.Positive() {
		s.ClearOutputSize()
		return
	}
	s.debounce.Cancel()
	s.commit(func() bool {
		s.style.OutputSize = size
		s.fixed = true
		return true
	})
}

// ClearOutputSize removes a fixed output size and recomputes at once.
func (s *Store) ClearOutputSize() {
	s.debounce.Cancel()
	s.commit(func() bool {
		s.style.OutputSize = pipeline.Dimension{}
		s.fixed = false
		return true
	})
}

// SetPadding sets the padding; negative values clamp to 0.
func (s *Store) SetPadding(padding int) {
	if padding < 0 {
		padding = 0
	}
	s.schedule(func() { s.style.Padding = padding })
}

// SetZoom sets the image zoom. Values below 0.01 clamp to 0.01.
func (s *Store) SetZoom(zoom float64) {
	if math.IsNaN(zoom) || zoom < minZoom {
		zoom = minZoom
	}
	s.schedule(func() { s.style.Zoom = zoom })
}

// SetFrame sets the frame kind.
func (s *Store) SetFrame(kind pipeline.FrameKind) {
	s.schedule(func() { s.style.Frame = kind })
}

// SetBorderRadius sets the user corner radius and updates the effective
// radii of the current geometry. While a recompute is pending the committed
// geometry is left alone; the recompute derives the radii.
func (s *Store) SetBorderRadius(radius float64) {
	if radius < 0 || math.IsNaN(radius) {
		radius = 0
	}
	s.update(func() {
		s.style.BorderRadius = radius
		if s.pending {
			return
		}
		s.geometry.Radii = layout.ComputeCornerRadii(
			s.style.Frame, radius, s.style.Zoom,
			float64(s.geometry.Content.Width), float64(s.geometry.Content.Height),
		)
	})
}

// SetBackground replaces the background.
func (s *Store) SetBackground(bg pipeline.Background) {
	s.update(func() { s.style.Background = cloneBackground(bg) })
}

// SetShadow replaces the shadow. Opacity is clamped to 0-100.
func (s *Store) SetShadow(sh pipeline.Shadow) {
	sh.Opacity = math.Max(0, math.Min(100, sh.Opacity))
	sh.Blur = math.Max(0, sh.Blur)
	s.update(func() { s.style.Shadow = sh })
}

// SetRotation sets the content rotation in degrees.
func (s *Store) SetRotation(degrees float64) {
	s.update(func() { s.style.Rotation = degrees })
}

// AddTextOverlay appends an overlay and returns its ID. An empty ID is
// replaced with a generated one.
func (s *Store) AddTextOverlay(ov pipeline.TextOverlay) string {
	if ov.ID == "" {
		ov.ID = ulid.Make().String()
	}
	ov = cloneOverlay(ov)
	s.update(func() { s.style.TextOverlays = append(s.style.TextOverlays, ov) })
	return ov.ID
}

// UpdateTextOverlay applies fn to the overlay with id. The ID cannot change.
func (s *Store) UpdateTextOverlay(id string, fn func(*pipeline.TextOverlay)) error {
	s.mu.Lock()
	idx := s.overlayIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrOverlayNotFound
	}
	ov := cloneOverlay(s.style.TextOverlays[idx])
	fn(&ov)
	ov.ID = id
	s.style.TextOverlays[idx] = ov
	s.version++
	s.mu.Unlock()
	return nil
}

// RemoveTextOverlay deletes the overlay with id.
func (s *Store) RemoveTextOverlay(id string) error {
	s.mu.Lock()
	idx := s.overlayIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrOverlayNotFound
	}
	overlays := s.style.TextOverlays
	s.style.TextOverlays = append(overlays[:idx:idx], overlays[idx+1:]...)
	s.version++
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Flush runs a pending recompute now. It reports whether one was pending.
func (s *Store) Flush() bool {
	return s.debounce.Flush()
}

// Subscribe registers fn to be called after every geometry commit.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Recomputes returns how many times geometry has been computed.
func (s *Store) Recomputes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputes
}

// Reset discards pending work and restores the default style without an image.
func (s *Store) Reset() {
	s.debounce.Cancel()
	s.mu.Lock()
	s.style = pipeline.DefaultStyleParameters()
	s.img = nil
	s.geometry = pipeline.LayoutGeometry{}
	s.pending = false
	s.fixed = false
	s.version++
	s.mu.Unlock()
}

// Close discards pending work and drops subscribers. Mutators still update
// values afterwards but no recompute is scheduled.
func (s *Store) Close() {
	s.debounce.Cancel()
	s.mu.Lock()
	s.closed = true
	s.pending = false
	s.subs = make(map[int]func(Snapshot))
	s.mu.Unlock()
}

// schedule applies a geometry-affecting change and queues one recompute.
func (s *Store) schedule(apply func()) {
	s.mu.Lock()
	apply()
	s.version++
	queue := !s.fixed && !s.closed && s.img != nil
	if queue {
		s.pending = true
	}
	s.mu.Unlock()

	if queue {
		s.debounce.Call(struct{}{})
	}
}

// update applies a change that leaves the canvas size alone.
func (s *Store) update(apply func()) {
	s.mu.Lock()
	apply()
	s.version++
	s.mu.Unlock()
}

// commit applies a change and recomputes synchronously.
func (s *Store) commit(apply func() bool) {
	s.mu.Lock()
	if !apply() {
		s.mu.Unlock()
		return
	}
	s.version++
	snap, subs := s.recomputeLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// recompute is the debounced callback.
func (s *Store) recompute() {
	s.mu.Lock()
	if !s.pending || s.closed || s.fixed {
		s.pending = false
		s.mu.Unlock()
		return
	}
	snap, subs := s.recomputeLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Store) recomputeLocked() (Snapshot, []func(Snapshot)) {
	s.pending = false

	size := pipeline.Dimension{}
	if s.img != nil {
		b := s.img.Bounds()
		size = pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}
	}
	s.geometry = layout.ComputeLayout(s.cache, s.style.LayoutInputFor(size))
	s.recomputes++
	s.version++

	s.logger.Debug("Geometry recomputed: %dx%d", s.geometry.Canvas.Width, s.geometry.Canvas.Height)

	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.snapshotLocked(), subs
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Style:    cloneStyle(s.style),
		Image:    s.img,
		Geometry: s.geometry,
		Pending:  s.pending,
		Version:  s.version,
	}
}

func (s *Store) overlayIndexLocked(id string) int {
	for i, ov := range s.style.TextOverlays {
		if ov.ID == id {
			return i
		}
	}
	return -1
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
