// Package lifecycle runs shutdown hooks when the program exits or is
// interrupted.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrTimeout is returned when hooks did not finish in time.
var ErrTimeout = errors.New("cleanup timeout exceeded")

type hook struct {
	name string
	fn   func() error
}

// Cleanup runs registered hooks once, in reverse registration order.
type Cleanup struct {
	mu      sync.Mutex
	hooks   []hook
	timeout time.Duration
	logger  *zap.SugaredLogger
	once    sync.Once
	err     error
}

// NewCleanup returns a Cleanup that gives hooks timeout to finish.
func NewCleanup(timeout time.Duration, logger *zap.SugaredLogger) *Cleanup {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Cleanup{timeout: timeout, logger: logger}
}

// Register adds a named hook.
func (c *Cleanup) Register(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook{name: name, fn: fn})
}

// Run executes the hooks. Later calls return the first call's result.
func (c *Cleanup) Run() error {
	c.once.Do(func() {
		c.err = c.run()
	})
	return c.err
}

func (c *Cleanup) run() error {
	c.mu.Lock()
	hooks := make([]hook, len(c.hooks))
	copy(hooks, c.hooks)
	logger := c.logger
	c.mu.Unlock()

	if len(hooks) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := runHook(hooks[i]); err != nil {
				logger.Warnw("cleanup: hook failed", "hook", hooks[i].name, "error", err)
				errs = append(errs, err)
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Warnw("cleanup: timed out, some hooks may not have run", "timeout", c.timeout)
		return ErrTimeout
	}
}

func runHook(h hook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", h.name, r)
		}
	}()
	if err := h.fn(); err != nil {
		return fmt.Errorf("%s: %w", h.name, err)
	}
	return nil
}
