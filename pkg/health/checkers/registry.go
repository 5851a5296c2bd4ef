package checkers

import (
	"context"
	"time"
)

// Pinger is anything that can confirm a remote dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegistryChecker checks the HTTP artifact registry.
type RegistryChecker struct {
	registry Pinger
}

func NewRegistryChecker(p Pinger) *RegistryChecker {
	return &RegistryChecker{registry: p}
}

func (c *RegistryChecker) Name() string { return "artifact-registry" }

func (c *RegistryChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.registry.Ping(ctx)
}
