// Package simple hands out monotonically increasing reservation IDs.
package simple

import (
	"context"
	"sync"
)

type Generator struct {
	mu      sync.Mutex
	counter int
}

func New() *Generator {
	//nolint:exhaustruct
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++

	return g.counter, nil
}
