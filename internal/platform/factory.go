package platform

import (
	"github.com/aretw0/terrane/pkg/core"
)

// NewSampler assembles a sampler around the given module.
//
//	sampler := terrane.NewSampler(pink, terrane.WithLogger(logger))
func NewSampler(m core.Module, opts ...Option) *core.Sampler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return core.NewSampler(m, o.logger, o.workers)
}
