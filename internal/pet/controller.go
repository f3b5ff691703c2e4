package pet

import (
	"context"
	"errors"
	"time"

	"reddypet/internal/logger"
)

// Controller owns the live pet, persists it after every change and serves
// the derived projection. It is not safe for concurrent use: callers drive
// it from a single loop.
type Controller struct {
	pet   Pet
	store Store
	log   *logger.Logger
	now   func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock used for ticks and projections.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController loads the last snapshot from store, or hatches a new pet.
func NewController(ctx context.Context, store Store, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		log:   log,
		now:   TimeNow,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Load(ctx)
	return c
}

// Load replaces the live pet with the stored snapshot. Absent or unreadable
// snapshots fall back to a fresh pet and are never reported to the caller.
func (c *Controller) Load(ctx context.Context) Pet {
	now := c.now()

	data, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			c.log.Infow("no saved pet, hatching a new one")
		} else {
			c.log.Warnw("failed to read saved pet, hatching a new one", "err", err)
		}
		c.pet = NewPet(now)
		return c.pet
	}

	p, err := Decode(data, now)
	if err != nil {
		c.log.Warnw("failed to parse saved pet, hatching a new one", "err", err)
		c.pet = NewPet(now)
		return c.pet
	}

	c.pet = p
	c.log.Debugw("loaded pet", "name", p.Name, "born", p.Born, "last_tick", p.LastTick)
	return c.pet
}

// Save persists the live pet.
func (c *Controller) Save(ctx context.Context) error {
	data, err := Encode(c.pet)
	if err != nil {
		return err
	}
	return c.store.Save(ctx, data)
}

// Tick applies decay for the time elapsed since the previous tick.
func (c *Controller) Tick(ctx context.Context) Projection {
	return c.modify(ctx, func(p *Pet, now time.Time) bool {
		p.Decay(now)
		return true
	})
}

// Feed lowers hunger.
func (c *Controller) Feed(ctx context.Context) Projection {
	return c.Dispatch(ctx, ActionFeed, "")
}

// Play raises fun.
func (c *Controller) Play(ctx context.Context) Projection {
	return c.Dispatch(ctx, ActionPlay, "")
}

// Clean raises cleanliness.
func (c *Controller) Clean(ctx context.Context) Projection {
	return c.Dispatch(ctx, ActionClean, "")
}

// Sleep restores energy.
func (c *Controller) Sleep(ctx context.Context) Projection {
	return c.Dispatch(ctx, ActionSleep, "")
}

// Rename sets a new name; blank names are ignored.
func (c *Controller) Rename(ctx context.Context, name string) Projection {
	return c.Dispatch(ctx, ActionRename, name)
}

// Reset hatches a new pet in place of the current one.
func (c *Controller) Reset(ctx context.Context) Projection {
	return c.Dispatch(ctx, ActionReset, "")
}

// Dispatch applies a named action. Actions that change nothing are not saved.
func (c *Controller) Dispatch(ctx context.Context, action Action, arg string) Projection {
	return c.modify(ctx, func(p *Pet, now time.Time) bool {
		if !p.Apply(action, arg, now) {
			c.log.Debugw("action ignored", "action", action)
			return false
		}
		c.log.Debugw("action applied", "action", action,
			"hunger", p.Hunger, "fun", p.Fun, "clean", p.Clean, "energy", p.Energy)
		return true
	})
}

// Pet returns a copy of the live state.
func (c *Controller) Pet() Pet {
	return c.pet
}

// Projection derives the read model for the current time.
func (c *Controller) Projection() Projection {
	return Project(c.pet, c.now())
}

// Helper to modify stats and save
func (c *Controller) modify(ctx context.Context, f func(*Pet, time.Time) bool) Projection {
	now := c.now()
	if f(&c.pet, now) {
		if err := c.Save(ctx); err != nil {
			c.log.Errorw("failed to save pet", "err", err)
		}
	}
	return Project(c.pet, now)
}
