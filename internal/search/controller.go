// Package search owns the debounced input-to-resolution lifecycle: it holds
// the current query and category, triggers resolution once input settles,
// and exposes the latest results to the caller.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/query"
)

// ErrResolutionFailed is surfaced when a resolution cycle fails outright,
// after every fallback tier. A successful query with zero matches is not an
// error.
var ErrResolutionFailed = errors.New("search failed, please try again")

// PlaceResolver resolves a processed query to recommendations.
type PlaceResolver interface {
	Resolve(ctx context.Context, query string, category catalog.Category) ([]catalog.Recommendation, error)
	DefaultSet(ctx context.Context, limit int) ([]catalog.Recommendation, error)
}

// EventsResolver resolves a processed query to events.
type EventsResolver interface {
	ResolveEvents(ctx context.Context, query string) ([]catalog.Event, error)
}

// Scheduler schedules a function after a delay and returns a cancel func.
// Injected so the debounce behavior is testable with a fake clock.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NewTimerScheduler returns the real, time.AfterFunc-backed scheduler.
func NewTimerScheduler() Scheduler { return timerScheduler{} }

// Snapshot is the read-only state the controller exposes. Slices are owned
// by the controller and must not be mutated by callers.
type Snapshot struct {
	Query           string
	Category        catalog.Category
	Recommendations []catalog.Recommendation
	Events          []catalog.Event
	Loading         bool
	Err             error
}

// Config tunes a Controller. Zero values take defaults.
type Config struct {
	Quiet        time.Duration // debounce quiet period, default 500ms
	DefaultLimit int           // size of the empty-query default set, default 6
	Scheduler    Scheduler
	Logger       zerolog.Logger
}

// Controller drives the resolution lifecycle. Each cycle carries a
// monotonically increasing generation; a cycle whose generation no longer
// matches at completion time is discarded, so a slow early query can never
// clobber a fast later one. In-flight remote calls are not aborted; the
// discard rule alone handles staleness since all calls are idempotent reads.
type Controller struct {
	pipeline *query.Pipeline
	places   PlaceResolver
	events   EventsResolver
	sched    Scheduler
	quiet    time.Duration
	limit    int
	log      zerolog.Logger

	mu          sync.Mutex
	gen         uint64
	cancelTimer func()
	snap        Snapshot
	updates     chan Snapshot
}

// New creates a Controller. The initial category is CategoryAll.
func New(pipeline *query.Pipeline, places PlaceResolver, events EventsResolver, cfg Config) *Controller {
	if cfg.Quiet <= 0 {
		cfg.Quiet = 500 * time.Millisecond
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 6
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTimerScheduler()
	}
	return &Controller{
		pipeline: pipeline,
		places:   places,
		events:   events,
		sched:    cfg.Scheduler,
		quiet:    cfg.Quiet,
		limit:    cfg.DefaultLimit,
		log:      cfg.Logger,
		snap:     Snapshot{Category: catalog.CategoryAll},
		updates:  make(chan Snapshot, 1),
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Updates returns a latest-wins channel of state changes. Slow receivers
// only ever miss intermediate states, never the newest one.
func (c *Controller) Updates() <-chan Snapshot {
	return c.updates
}

// SetQuery records new raw text and restarts the quiet-period timer. Empty
// text skips the debounce entirely and loads the default result set.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.snap.Query = text
	c.stopTimerLocked()

	if strings.TrimSpace(text) == "" {
		gen := c.nextGenLocked()
		c.snap.Loading = true
		c.publishLocked()
		c.mu.Unlock()
		go c.loadDefaults(gen)
		return
	}

	c.cancelTimer = c.sched.Schedule(c.quiet, func() { c.fire(text) })
	c.publishLocked()
	c.mu.Unlock()
}

// SetCategory records an explicit category and starts a resolution cycle
// immediately; picking a category is a discrete action, not keystrokes.
func (c *Controller) SetCategory(cat catalog.Category) {
	c.mu.Lock()
	c.snap.Category = cat
	c.stopTimerLocked()
	text := c.snap.Query

	if strings.TrimSpace(text) == "" {
		gen := c.nextGenLocked()
		c.snap.Loading = true
		c.publishLocked()
		c.mu.Unlock()
		go c.loadDefaults(gen)
		return
	}
	c.mu.Unlock()
	c.fire(text)
}

// Close cancels any pending debounce timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// fire starts a resolution cycle for text. Called by the scheduler when the
// quiet period elapses, or directly for non-debounced triggers.
func (c *Controller) fire(text string) {
	c.mu.Lock()
	if c.snap.Query != text {
		// Newer text arrived after this timer was queued.
		c.mu.Unlock()
		return
	}
	gen := c.nextGenLocked()
	res := c.pipeline.Process(text, c.snap.Category)
	c.snap.Category = res.Category
	c.snap.Loading = true
	// Currently-displayed results stay visible while resolving.
	c.publishLocked()
	c.mu.Unlock()

	go c.resolve(gen, res.ProcessedQuery, res.Category)
}

func (c *Controller) resolve(gen uint64, processed string, cat catalog.Category) {
	cycle := uuid.NewString()
	c.log.Debug().Str("cycle", cycle).Uint64("gen", gen).
		Str("query", processed).Str("category", string(cat)).Msg("resolving")

	ctx := context.Background()
	var (
		recs []catalog.Recommendation
		evts []catalog.Event
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recs, err = c.places.Resolve(ctx, processed, cat)
		return err
	})
	g.Go(func() error {
		var err error
		evts, err = c.events.ResolveEvents(ctx, processed)
		return err
	})
	err := g.Wait()

	c.settle(gen, cycle, recs, evts, err)
}

func (c *Controller) loadDefaults(gen uint64) {
	cycle := uuid.NewString()
	recs, err := c.places.DefaultSet(context.Background(), c.limit)
	c.settle(gen, cycle, recs, []catalog.Event{}, err)
}

// settle applies a completed cycle's results atomically, or discards them
// when a newer cycle has started since (last-write-wins by generation).
func (c *Controller) settle(gen uint64, cycle string, recs []catalog.Recommendation, evts []catalog.Event, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug().Str("cycle", cycle).Uint64("gen", gen).
			Uint64("latest", c.gen).Msg("discarding stale resolution")
		return
	}

	c.snap.Loading = false
	if err != nil {
		c.log.Error().Str("cycle", cycle).Err(err).Msg("resolution failed")
		c.snap.Err = ErrResolutionFailed
		c.snap.Recommendations = nil
		c.snap.Events = nil
		// The inferred category stays in place even on failure.
	} else {
		c.snap.Err = nil
		c.snap.Recommendations = recs
		c.snap.Events = evts
	}
	c.publishLocked()
}

func (c *Controller) nextGenLocked() uint64 {
	c.gen++
	return c.gen
}

func (c *Controller) stopTimerLocked() {
	if c.cancelTimer != nil {
		c.cancelTimer()
		c.cancelTimer = nil
	}
}

func (c *Controller) publishLocked() {
	// Drop the stale buffered snapshot, then publish the new one.
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- c.snap:
	default:
	}
}
