package client

import (
	"context"
	"sync"
)

type Pool struct {
	mu      sync.Mutex
	clients map[string]*Client
}

func NewPool() *Pool {
	return &Pool{
		clients: make(map[string]*Client),
	}
}

// GetClient return the memoized client for endPoint, connecting on first
// use. The mutex keeps concurrent cold start requests from issuing
// duplicate connect attempts. A failed connect is not memoized.
func (p *Pool) GetClient(ctx context.Context, endPoint string) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, existed := p.clients[endPoint]; existed {
		return c, nil
	}
	c := NewClient(endPoint)
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	p.clients[endPoint] = c
	return c, nil
}
