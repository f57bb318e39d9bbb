package demostate

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/store"
)

// DefaultFlagKey is the durable-store key holding "true" while demo mode is
// active. The key is deleted (not set to "false") on deactivation.
const DefaultFlagKey = "brewos:demo:active"

// Controller owns the durable demo flag. It is queried by every UI-facing
// handler to branch between live-machine data and synthesized data.
//
// IsActive may mutate durable state and rewrite the visible location as a
// side effect of being queried; repeated calls with the same context are
// idempotent.
type Controller struct {
	kv      store.KV
	flagKey string
	logger  *zap.Logger
}

func NewController(kv store.KV, flagKey string, logger *zap.Logger) *Controller {
	if flagKey == "" {
		flagKey = DefaultFlagKey
	}
	return &Controller{kv: kv, flagKey: flagKey, logger: logger}
}

// InitializeFromContext consumes demo parameters once at startup, before any
// other component reads demo state.
func (c *Controller) InitializeFromContext(ctx context.Context, nav NavContext) {
	if nav == nil {
		return
	}
	c.apply(ctx, nav, Decide(nav.Query()))
}

// IsActive resolves the effective demo state. Evaluation order (first match
// wins): exitDemo=true clears the flag and returns false; demo=true sets the
// flag and returns true; otherwise the durable flag decides.
func (c *Controller) IsActive(ctx context.Context, nav NavContext) bool {
	if nav == nil {
		return c.flag(ctx)
	}
	d := Decide(nav.Query())
	c.apply(ctx, nav, d)
	switch d.Mode {
	case ModeExit:
		return false
	case ModeEnter:
		return true
	default:
		return c.flag(ctx)
	}
}

// Activate unconditionally sets the durable flag.
func (c *Controller) Activate(ctx context.Context) error {
	return c.kv.Set(ctx, c.flagKey, "true", 0)
}

// Deactivate unconditionally clears the durable flag.
func (c *Controller) Deactivate(ctx context.Context) error {
	return c.kv.Delete(ctx, c.flagKey)
}

// apply performs the effectful half of a Decision: durable-store write first,
// then the location rewrite, so a failed store never leaves a stripped URL
// with an unpersisted choice.
func (c *Controller) apply(ctx context.Context, nav NavContext, d Decision) {
	switch d.Mode {
	case ModeExit:
		if err := c.Deactivate(ctx); err != nil {
			c.logger.Warn("failed to clear demo flag", zap.Error(err))
		}
	case ModeEnter:
		if err := c.Activate(ctx); err != nil {
			c.logger.Warn("failed to set demo flag", zap.Error(err))
		}
	default:
		return
	}
	nav.ReplaceLocation(stripParams(nav.Query(), d.Strip))
}

// flag reads the durable flag. A missing key or an unreachable store both
// resolve to inactive.
func (c *Controller) flag(ctx context.Context) bool {
	readCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	val, err := c.kv.Get(readCtx, c.flagKey)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			c.logger.Warn("demo flag read failed, treating as inactive", zap.Error(err))
		}
		return false
	}
	return val == "true"
}
