package client

import (
	"context"

	"github.com/paintover/inpaint-proxy-api/pkg/models"
)

// Generator is the narrow surface the HTTP layer depends on. The wire
// shape of the remote call never leaves this package. Callers pass a
// request with defaults already applied.
type Generator interface {
	GenerateImage(ctx context.Context, request *models.InpaintRequest) (string, error)
}

// InpaintGenerator binds the client pool to one fixed deployment endpoint.
// Construct once at startup and inject into the handler.
type InpaintGenerator struct {
	pool     *Pool
	endpoint string
}

func NewInpaintGenerator(endpoint string) *InpaintGenerator {
	return &InpaintGenerator{
		pool:     NewPool(),
		endpoint: endpoint,
	}
}

func (g *InpaintGenerator) GenerateImage(ctx context.Context, request *models.InpaintRequest) (string, error) {
	c, err := g.pool.GetClient(ctx, g.endpoint)
	if err != nil {
		return "", err
	}
	return c.GenerateImage(ctx, request)
}
