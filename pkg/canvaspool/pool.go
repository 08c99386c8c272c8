// Package canvaspool recycles drawing surfaces keyed by exact pixel size.
//
// A surface is owned by exactly one caller between Acquire and
// Release/Dispose. The pool never hands out a surface that is in use and
// never reclaims one implicitly; only Destroy frees surfaces still in use.
package canvaspool

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/oklog/ulid/v2"

	"github.com/user/mockshot/pkg/adapters/logger"
	"github.com/user/mockshot/pkg/ports"
)

const (
	// DefaultIdleTimeout is how long a released surface stays pooled.
	DefaultIdleTimeout = 30 * time.Second
	// DefaultMaxEntries caps the number of tracked surfaces.
	DefaultMaxEntries = 5
	// DefaultSweepInterval is how often idle surfaces are swept.
	DefaultSweepInterval = 10 * time.Second
)

// Surface is a reusable RGBA drawing target.
type Surface struct {
	ID     string
	Width  int
	Height int

	dc *gg.Context
}

// Context returns the drawing context, or nil once the surface is disposed.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Disposed reports whether the backing memory has been freed.
func (s *Surface) Disposed() bool {
	return s.dc == nil
}

func (s *Surface) clear() {
	if s.dc == nil {
		return
	}
	s.dc.Identity()
	s.dc.ResetClip()
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *Surface) free() {
	s.dc = nil
	s.Width = 0
	s.Height = 0
}

type entry struct {
	key      string
	surface  *Surface
	lastUsed time.Time
	inUse    bool
}

// Pool tracks surfaces by size.
type Pool struct {
	mu      sync.Mutex
	byKey   map[string][]*entry
	bySurf  map[*Surface]*entry
	count   int
	timeout time.Duration
	max     int
	now     func() time.Time
	logger  ports.Logger

	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Option configures a Pool.
type Option func(*Pool)

// WithIdleTimeout sets how long released surfaces are kept.
func WithIdleTimeout(d time.Duration) Option {
	return func(p *Pool) { p.timeout = d }
}

// WithMaxEntries sets the maximum number of tracked surfaces.
func WithMaxEntries(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.max = n
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pool) { p.now = now }
}

// WithSweepInterval sets the background sweep period. Zero disables the
// background sweeper; Sweep can still be called directly.
func WithSweepInterval(d time.Duration) Option {
	return func(p *Pool) { p.interval = d }
}

// WithLogger sets the logger used for pool events.
func WithLogger(l ports.Logger) Option {
	return func(p *Pool) { p.logger = l.WithComponent("canvaspool") }
}

// New creates a Pool and starts its sweeper.
func New(opts ...Option) *Pool {
	p := &Pool{
		byKey:    make(map[string][]*entry),
		bySurf:   make(map[*Surface]*entry),
		timeout:  DefaultIdleTimeout,
		max:      DefaultMaxEntries,
		now:      time.Now,
		logger:   logger.NewNoop(),
		interval: DefaultSweepInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.interval > 0 {
		go p.sweeper()
	} else {
		close(p.done)
	}
	return p
}

func sizeKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// Acquire returns an idle surface of exactly width x height, or allocates a
// new one. Dimensions below 1 are clamped to 1.
func (p *Pool) Acquire(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	key := sizeKey(width, height)

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.byKey[key] {
		if !e.inUse {
			e.inUse = true
			e.lastUsed = p.now()
			p.logger.Debug("Reusing surface %s (%s)", e.surface.ID, key)
			return e.surface
		}
	}

	for p.count >= p.max {
		if !p.evictOldestIdleLocked() {
			break
		}
	}

	s := &Surface{
		ID:     ulid.Make().String(),
		Width:  width,
		Height: height,
		dc:     gg.NewContext(width, height),
	}
	e := &entry{key: key, surface: s, lastUsed: p.now(), inUse: true}
	p.byKey[key] = append(p.byKey[key], e)
	p.bySurf[s] = e
	p.count++
	p.logger.Debug("Allocated surface %s (%s), %d pooled", s.ID, key, p.count)
	return s
}

// Release returns a surface to the pool and clears its pixels.
// Releasing an untracked surface, or releasing twice, does nothing.
func (p *Pool) Release(s *Surface) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.bySurf[s]
	if !ok || !e.inUse {
		return
	}
	s.clear()
	e.inUse = false
	e.lastUsed = p.now()

	for p.count > p.max {
		if !p.evictOldestIdleLocked() {
			break
		}
	}
}

// Dispose removes a surface from the pool and frees its pixels.
// The surface's dimensions become 0x0. Untracked surfaces are left alone.
func (p *Pool) Dispose(s *Surface) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.bySurf[s]; ok {
		p.removeLocked(e)
	}
}

// Sweep disposes idle surfaces released longer than the idle timeout ago.
// It returns the number of surfaces removed.
func (p *Pool) Sweep(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	var stale []*entry
	for _, list := range p.byKey {
		for _, e := range list {
			if !e.inUse && now.Sub(e.lastUsed) > p.timeout {
				stale = append(stale, e)
			}
		}
	}
	for _, e := range stale {
		p.removeLocked(e)
	}
	if len(stale) > 0 {
		p.logger.Debug("Swept %d idle surfaces", len(stale))
	}
	return len(stale)
}

// Destroy disposes every surface, in use or not, and stops the sweeper.
func (p *Pool) Destroy() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()

	for s := range p.bySurf {
		s.free()
	}
	p.byKey = make(map[string][]*entry)
	p.bySurf = make(map[*Surface]*entry)
	p.count = 0
}

// Len returns the number of tracked surfaces.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// InUse returns the number of tracked surfaces currently acquired.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.bySurf {
		if e.inUse {
			n++
		}
	}
	return n
}

// evictOldestIdleLocked drops the idle entry released longest ago and
// reports whether one was found. In-use entries are never evicted, so the
// pool can exceed its cap only while surfaces are busy.
func (p *Pool) evictOldestIdleLocked() bool {
	var oldest *entry
	for _, e := range p.bySurf {
		if e.inUse {
			continue
		}
		if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
			oldest = e
		}
	}
	if oldest == nil {
		return false
	}
	p.logger.Debug("Evicting surface %s (%s)", oldest.surface.ID, oldest.key)
	p.removeLocked(oldest)
	return true
}

func (p *Pool) removeLocked(e *entry) {
	list := p.byKey[e.key]
	for i, other := range list {
		if other == e {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(p.byKey, e.key)
	} else {
		p.byKey[e.key] = list
	}
	delete(p.bySurf, e.surface)
	p.count--
	e.surface.free()
}

func (p *Pool) sweeper() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.Sweep(p.now())
		}
	}
}
