package usecase

import (
	"context"
	"payment_bridge/internal/domain/entities"
	"sync"
)

// completion is a single-shot handle resolved with the one result a bridge emits.
type completion struct {
	once   sync.Once
	done   chan struct{}
	result entities.Result
}

func newCompletion() *completion {
	return &completion{done: make(chan struct{})}
}

// resolve stores r if nothing was stored yet and reports whether it did.
func (c *completion) resolve(r entities.Result) bool {
	first := false
	c.once.Do(func() {
		c.result = r
		first = true
		close(c.done)
	})
	return first
}

func (c *completion) Done() <-chan struct{} {
	return c.done
}

func (c *completion) Result() (entities.Result, bool) {
	select {
	case <-c.done:
		return c.result, true
	default:
		return entities.Result{}, false
	}
}

func (c *completion) Wait(ctx context.Context) (entities.Result, error) {
	select {
	case <-c.done:
		return c.result, nil
	case <-ctx.Done():
		return entities.Result{}, ctx.Err()
	}
}
